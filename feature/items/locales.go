package items

import "whitecore/core/gamedata"

// PatchLocales writes the display strings of id into every loaded language and
// returns the number of languages patched.
func PatchLocales(tables *gamedata.Tables, id string, locales *Locales) int {
	if locales == nil {
		return 0
	}
	for lang, strs := range tables.Locales.Global {
		if strs == nil {
			strs = make(map[string]string)
			tables.Locales.Global[lang] = strs
		}
		strs[id+" Name"] = locales.Name
		strs[id+" ShortName"] = locales.ShortName
		strs[id+" Description"] = locales.Description
	}
	return len(tables.Locales.Global)
}
