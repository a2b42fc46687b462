package entity

// Condition is the display category derived from an upstream weather code.
type Condition string

const (
	ConditionClear   Condition = "clear"
	ConditionClouds  Condition = "clouds"
	ConditionMist    Condition = "mist"
	ConditionDrizzle Condition = "drizzle"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
)

type conditionRule struct {
	matches   func(code int) bool
	condition Condition
}

func between(low, high int) func(int) bool {
	return func(code int) bool { return code >= low && code <= high }
}

func oneOf(codes ...int) func(int) bool {
	return func(code int) bool {
		for _, c := range codes {
			if code == c {
				return true
			}
		}
		return false
	}
}

// conditionRules is evaluated in order and the first match wins.
var conditionRules = []conditionRule{
	{oneOf(0), ConditionClear},
	{between(1, 3), ConditionClouds},
	{oneOf(45, 48), ConditionMist},
	{between(51, 57), ConditionDrizzle},
	{func(code int) bool { return between(61, 67)(code) || between(80, 82)(code) }, ConditionRain},
	{between(71, 77), ConditionSnow},
	// WMO codes stop at 99; anything above is malformed and falls through.
	{between(95, 99), ConditionRain},
}

// ClassifyWeatherCode maps a WMO weather code to a display category. Codes no
// rule covers, including negative ones, fall back to clouds.
func ClassifyWeatherCode(code int) Condition {
	for _, rule := range conditionRules {
		if rule.matches(code) {
			return rule.condition
		}
	}
	return ConditionClouds
}

// Icon returns the icon asset name for the condition.
func (c Condition) Icon() string {
	return string(c) + ".png"
}
