package constants

// Display Geometry (Pico Display pixel space)
const (
	// DisplayWidth is the logical framebuffer width in pixels
	DisplayWidth = 240

	// DisplayHeight is the logical framebuffer height in pixels
	DisplayHeight = 135

	// PetYOffset lowers the pet below the vertical center to leave room for icons
	PetYOffset = 25

	// DefaultPixelScale is how many framebuffer pixels map to one terminal column
	DefaultPixelScale = 2
)

// Main Menu Layout
const (
	// IconCount is the number of main menu icons
	IconCount = 6

	// IconsPerColumn is how many icons sit on each side of the screen
	IconsPerColumn = 3

	// IconLeftX is the x of the left icon column
	IconLeftX = 10

	// IconRightInset is subtracted from the display width for the right icon column
	IconRightInset = 30

	// IconTopY is the y of the first icon in each column
	IconTopY = 10

	// IconSpacingY is the vertical distance between icons
	IconSpacingY = 45
)

// Submenu Layout
const (
	MenuTextX       = 10
	MenuTitleY      = 10
	MenuOptionTopY  = 50
	MenuOptionStepY = 30
	MenuTextScale   = 3

	StatsTopY  = 20
	StatsStepY = 30
)

// Submenu Titles
const (
	TitleFood          = "Select food"
	TitleEntertainment = "Select type"
	TitleHealth        = "Select type"
	TitleSleep         = "Sleep Menu"
)

// KeyHint is shown under the pixel area on the terminal
const KeyHint = " a/↑ prev  b/↓ next  y/⏎ ok  x/esc back  q quit "
