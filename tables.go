package ansimarkup

// styleNames lists the style tags in SGR order: index 0 is the universal
// reset ("/"), index i for i > 0 is SGR code i.
var styleNames = [...]string{
	"/",
	"bold",
	"dim",
	"italic",
	"underline",
	"blink",
	"blink2",
	"inverse",
	"invisible",
	"strikethrough",
}

// unsetMap maps a "/"-prefixed tag to the SGR code that clears the style.
// "/fg" and "/bg" restore the default foreground and background colors.
var unsetMap = map[string]string{
	"/bold":          "22",
	"/dim":           "22",
	"/italic":        "23",
	"/underline":     "24",
	"/blink":         "25",
	"/blink2":        "26",
	"/inverse":       "27",
	"/invisible":     "28",
	"/strikethrough": "29",
	"/fg":            "39",
	"/bg":            "49",
}

// unsetOrder fixes the reverse-lookup order for unsetMap so codes shared by
// two tags resolve deterministically ("/bold" wins over "/dim" for 22).
var unsetOrder = [...]string{
	"/bold",
	"/dim",
	"/italic",
	"/underline",
	"/blink",
	"/blink2",
	"/inverse",
	"/invisible",
	"/strikethrough",
	"/fg",
	"/bg",
}

// styleIndex returns the index of a style tag in styleNames, or -1.
func styleIndex(tag string) int {
	for i, name := range styleNames {
		if name == tag {
			return i
		}
	}
	return -1
}

// unsetName reverse-maps an SGR code to its "/"-prefixed tag.
func unsetName(code string) (string, bool) {
	for _, name := range unsetOrder {
		if unsetMap[name] == code {
			return name, true
		}
	}
	return "", false
}

// isUnsetValue reports whether code clears some style.
func isUnsetValue(code string) bool {
	_, ok := unsetName(code)
	return ok
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
