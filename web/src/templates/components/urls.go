package components

import "fmt"

// ViewURL returns the endpoint for an action on a mounted view.
func ViewURL(viewID, action string) string {
	if action == "" {
		return "/views/" + viewID
	}
	return fmt.Sprintf("/views/%s/%s", viewID, action)
}

// Vals encodes a single key/value pair for hx-vals.
func Vals(key, value string) string {
	return fmt.Sprintf(`{%q:%q}`, key, value)
}
