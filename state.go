package splits

// TimerState is one frame of a timer row: a small fractional part drawn
// right of the larger main time.
type TimerState struct {
	Background Gradient
	// Time holds the main digits, e.g. "1:23".
	Time string
	// Fraction holds the sub-second digits, e.g. ".45".
	Fraction    string
	TopColor    Color
	BottomColor Color
}

// ComparisonState is one comparison line below the segment timer.
type ComparisonState struct {
	Name string
	Time string
}

// DetailedTimerState is one frame of the detailed timer component.
type DetailedTimerState struct {
	Background Gradient
	// IconChange is set only on the frame the segment icon changes.
	IconChange  *ImageSource
	SegmentName *string
	// Timer is the run timer in the top row.
	Timer TimerState
	// SegmentTimer is the segment timer in the bottom row.
	SegmentTimer TimerState
	Comparison1  *ComparisonState
	Comparison2  *ComparisonState
}

// LayoutState carries layout-wide settings shared by all components.
type LayoutState struct {
	TextColor Color
}
