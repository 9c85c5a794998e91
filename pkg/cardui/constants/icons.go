package constants

// Icon names an SVG glyph bundled with the framework.
type Icon string

const (
	IconNone         Icon = ""
	IconPerson       Icon = "person"        // Filled person in a circle
	IconGear         Icon = "gear"          // Settings gear
	IconBell         Icon = "bell"          // Notifications
	IconLock         Icon = "lock"          // Privacy and security
	IconInfo         Icon = "info"          // Information circle
	IconStar         Icon = "star"          // Rating star
	IconHouse        Icon = "house"         // Home
	IconChevronLeft  Icon = "chevron-left"  // Back navigation
	IconChevronRight Icon = "chevron-right" // Forward navigation hint
)
