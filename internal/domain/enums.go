package domain

type LayerType string

const (
	LayerHolidays     LayerType = "holidays"
	LayerOrganization LayerType = "organization"
	LayerCustom       LayerType = "custom"
)

type ShareVisibility string

const (
	ShareUsers  ShareVisibility = "users"
	SharePublic ShareVisibility = "public"
)

type ShareTheme string

const (
	ThemeLight ShareTheme = "light"
	ThemeDark  ShareTheme = "dark"
	ThemeAuto  ShareTheme = "auto"
)

type RepeatInterval string

const (
	RepeatWeekly  RepeatInterval = "weekly"
	RepeatMonthly RepeatInterval = "monthly"
	RepeatYearly  RepeatInterval = "yearly"
)

// ValidActivityTypes is the canonical set of built-in activity type keys.
// Organizations may extend the set through ActivityTypeConfig rows.
var ValidActivityTypes = map[string]bool{
	"meeting": true, "deadline": true, "event": true, "planning": true,
	"review": true, "training": true, "holiday": true, "other": true,
}
