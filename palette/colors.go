package palette

// Standard attributes for the stock views, following the classic text-mode
// dialog look: gray dialogs on a blue desktop.
var (
	Desktop = NewAttr(LightGray, Blue)

	DialogNormal = NewAttr(Black, LightGray)

	FrameActive  = NewAttr(White, LightGray)
	FramePassive = NewAttr(DarkGray, LightGray)
	FrameIcon    = NewAttr(LightGreen, LightGray)

	ButtonNormal   = NewAttr(Black, Green)
	ButtonDefault  = NewAttr(LightCyan, Green)
	ButtonSelected = NewAttr(White, Green)
	ButtonDisabled = NewAttr(DarkGray, LightGray)
	ButtonShadow   = NewAttr(DarkGray, LightGray)
	ButtonShortcut = NewAttr(Yellow, Green)

	LabelNormal   = NewAttr(Black, LightGray)
	LabelShortcut = NewAttr(Red, LightGray)

	StaticNormal = NewAttr(Black, LightGray)

	MenuNormal   = NewAttr(Black, LightGray)
	MenuSelected = NewAttr(White, Green)
	MenuDisabled = NewAttr(DarkGray, LightGray)
	MenuShortcut = NewAttr(Red, LightGray)

	StatusNormal   = NewAttr(Black, LightGray)
	StatusShortcut = NewAttr(Red, LightGray)
	StatusDisabled = NewAttr(DarkGray, LightGray)
)
