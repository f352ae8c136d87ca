package leadimport

import "github.com/crewboard/crewboard-back/pkg/leads"

// MissingTitle is the sentinel a row gets when no title alias matched.
// Rows carrying it are rejected before any duplicate comparison.
const MissingTitle = "Unnamed"

// fieldAliases maps each canonical lead field to the source headers that
// may carry it, in priority order. The first non-empty match wins.
// Headers arrive already lowercased, slash-stripped and trimmed.
var fieldAliases = map[string][]string{
	"title":      {"title", "name", "company", "business_name"},
	"phone":      {"phone", "phone_number", "phonenumber", "mobile", "contact"},
	"email1":     {"email1", "email", "e-mail", "mail"},
	"email2":     {"email2"},
	"email3":     {"email3"},
	"email4":     {"email4"},
	"email5":     {"email5"},
	"website":    {"website", "web", "site", "domain"},
	"url":        {"url", "link", "maps_url", "google_maps"},
	"instagram1": {"instagram1", "instagram", "insta", "ig"},
	"instagram2": {"instagram2"},
	"facebook1":  {"facebook1", "facebook", "fb"},
	"facebook2":  {"facebook2"},
	"linkedin1":  {"linkedin1", "linkedin"},
	"linkedin2":  {"linkedin2"},
	"youtube1":   {"youtube1", "youtube", "yt"},
	"youtube2":   {"youtube2"},
	"tiktok1":    {"tiktok1", "tiktok"},
	"tiktok2":    {"tiktok2"},
	"twitter1":   {"twitter1", "twitter", "x"},
	"twitter2":   {"twitter2"},
	"city":       {"city", "location", "town"},
	"imageurl":   {"imageurl", "image_url", "image", "photo", "picture"},
	"notes":      {"notes", "note", "comments", "description"},
}

// MapRecord normalizes a parsed record into the canonical lead shape,
// minus ID, Status and UploadedAt which are assigned at persist time.
// The output always has every field set (possibly empty); a row whose
// title resolved to nothing gets the MissingTitle sentinel.
func MapRecord(rec Record) leads.Lead {
	pick := func(field string) string {
		for _, alias := range fieldAliases[field] {
			if v := rec[alias]; v != "" {
				return v
			}
		}
		return ""
	}

	l := leads.Lead{
		Title:      pick("title"),
		Phone:      pick("phone"),
		Email1:     pick("email1"),
		Email2:     pick("email2"),
		Email3:     pick("email3"),
		Email4:     pick("email4"),
		Email5:     pick("email5"),
		Website:    pick("website"),
		URL:        pick("url"),
		Instagram1: pick("instagram1"),
		Instagram2: pick("instagram2"),
		Facebook1:  pick("facebook1"),
		Facebook2:  pick("facebook2"),
		Linkedin1:  pick("linkedin1"),
		Linkedin2:  pick("linkedin2"),
		Youtube1:   pick("youtube1"),
		Youtube2:   pick("youtube2"),
		Tiktok1:    pick("tiktok1"),
		Tiktok2:    pick("tiktok2"),
		Twitter1:   pick("twitter1"),
		Twitter2:   pick("twitter2"),
		City:       pick("city"),
		ImageURL:   pick("imageurl"),
		Notes:      pick("notes"),
	}
	if l.Title == "" {
		l.Title = MissingTitle
	}
	return l
}
