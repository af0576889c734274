package components

import (
	"strconv"

	"maragu.dev/gomponents"
)

// Icon paths (24x24 stroke icons).
var iconPaths = map[string][]string{
	"leaf": {
		"M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.48 19 2c1 2 2 4.18 2 8 0 5.5-4.78 10-10 10Z",
		"M2 21c0-3 1.85-5.36 5.08-6C9.5 14.52 12 13 13 12",
	},
	"sprout": {
		"M7 20h10",
		"M10 20c5.5-2.5.8-6.4 3-10",
		"M9.5 9.4c1.1.8 1.8 2.2 2.3 3.7-2 .4-3.5.4-4.8-.3-1.2-.6-2.3-1.9-3-4.2 2.8-.5 4.4 0 5.5.8z",
		"M14.1 6a7 7 0 0 0-1.1 4c1.9-.1 3.3-.6 4.3-1.4 1-1 1.6-2.3 1.7-4.6-2.7.1-4 1-4.9 2z",
	},
	"mail": {
		"M4 4h16c1.1 0 2 .9 2 2v12c0 1.1-.9 2-2 2H4c-1.1 0-2-.9-2-2V6c0-1.1.9-2 2-2z",
		"m22 6-10 7L2 6",
	},
	"lock": {
		"M5 11h14a2 2 0 0 1 2 2v7a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-7a2 2 0 0 1 2-2z",
		"M7 11V7a5 5 0 0 1 10 0v4",
	},
	"eye": {
		"M2 12s3-7 10-7 10 7 10 7-3 7-10 7-10-7-10-7Z",
		"M12 15a3 3 0 1 0 0-6 3 3 0 0 0 0 6z",
	},
	"eye-off": {
		"M9.88 9.88a3 3 0 1 0 4.24 4.24",
		"M10.73 5.08A10.43 10.43 0 0 1 12 5c7 0 10 7 10 7a13.16 13.16 0 0 1-1.67 2.68",
		"M6.61 6.61A13.526 13.526 0 0 0 2 12s3 7 10 7a9.74 9.74 0 0 0 5.39-1.61",
		"m2 2 20 20",
	},
	"user": {
		"M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2",
		"M12 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8z",
	},
	"phone": {
		"M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.127.96.361 1.903.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.907.339 1.85.573 2.81.7A2 2 0 0 1 22 16.92z",
	},
	"arrow-right":  {"M5 12h14", "m12 5 7 7-7 7"},
	"arrow-left":   {"m12 19-7-7 7-7", "M19 12H5"},
	"chevron-left": {"m15 18-6-6 6-6"},
}

// Icon renders a named stroke icon at size px.
func Icon(name string, size int, class string) gomponents.Node {
	paths := iconPaths[name]
	s := strconv.Itoa(size)
	return gomponents.El("svg",
		gomponents.Attr("xmlns", "http://www.w3.org/2000/svg"),
		gomponents.Attr("width", s),
		gomponents.Attr("height", s),
		gomponents.Attr("viewBox", "0 0 24 24"),
		gomponents.Attr("fill", "none"),
		gomponents.Attr("stroke", "currentColor"),
		gomponents.Attr("stroke-width", "2"),
		gomponents.Attr("stroke-linecap", "round"),
		gomponents.Attr("stroke-linejoin", "round"),
		gomponents.If(class != "", gomponents.Attr("class", class)),
		gomponents.Map(paths, func(d string) gomponents.Node {
			return gomponents.El("path", gomponents.Attr("d", d))
		}),
	)
}
