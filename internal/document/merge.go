package document

import "strings"

// NormalizeLocale lower-cases a locale code and turns “_” into “-”, so
// "Zh_HANS-hk" becomes "zh-hans-hk".
func NormalizeLocale(l string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(l)), "_", "-")
}

// NormalizeLocales returns a deep copy of d whose locale and meta.locale
// fields are normalized.  d is never modified.
func NormalizeLocales(d Document) Document {
	out := d.Clone()
	if out == nil {
		return Document{}
	}
	if l, ok := out["locale"].(string); ok {
		out["locale"] = NormalizeLocale(l)
	}
	if meta := asObject(out["meta"]); meta != nil {
		if l, ok := meta["locale"].(string); ok {
			meta["locale"] = NormalizeLocale(l)
		}
	}
	return out
}

// MergeProfile builds the effective document for a child profile rendered
// inside parent (a directory or locator page).
//
//   - locale comes from profile.meta.locale, then parent.locale;
//   - every top-level profile field is carried over as-is;
//   - meta is parent.meta overlaid with profile.meta;
//   - the internal bag is parent.__ overlaid with profile.__, plus the merged
//     isPrimaryLocale flag (profile.meta.isPrimaryLocale when boolean, else
//     locale == "en");
//   - the page-set config is the parent's, unchanged.
//
// Neither argument is modified.
func MergeProfile(profile, parent Document) Document {
	profile = profile.Clone()
	parent = parent.Clone()

	locale := profile.String("meta.locale")
	if locale == "" {
		locale = parent.String("locale")
	}

	var isPrimary bool
	if b, ok := asObject(profile["meta"])["isPrimaryLocale"].(bool); ok {
		isPrimary = b
	} else {
		isPrimary = locale == "en"
	}

	out := make(Document, len(profile)+4)
	out["locale"] = locale
	for k, v := range profile {
		out[k] = v
	}

	meta := make(map[string]any)
	for k, v := range asObject(parent["meta"]) {
		meta[k] = v
	}
	for k, v := range asObject(profile["meta"]) {
		meta[k] = v
	}
	out["meta"] = meta

	bag := make(map[string]any)
	for k, v := range asObject(parent[KeyInternal]) {
		bag[k] = v
	}
	for k, v := range asObject(profile[KeyInternal]) {
		bag[k] = v
	}
	bag["isPrimaryLocale"] = isPrimary
	out[KeyInternal] = bag

	if ps, ok := parent[KeyPageSet]; ok {
		out[KeyPageSet] = ps
	} else {
		delete(out, KeyPageSet)
	}
	if ps, ok := parent[KeyPageSetConfig]; ok {
		out[KeyPageSetConfig] = ps
	} else {
		delete(out, KeyPageSetConfig)
	}
	return out
}
