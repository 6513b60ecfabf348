// Package tw parses Tailwind-style class strings into chip style properties.
//
// Classes cover chip padding, colors, font, corner radius, the remove
// affordance and the container gaps. Responsive prefixes (sm:, md:, lg:,
// xl:, 2xl:) resolve against the container width, and the gold: variant
// sets the text color used for gold tags.
//
// The built-in utility tables live in generated.go, produced from theme.toml.
package tw

//go:generate go run ../tools/generate -theme theme.toml -out generated.go
