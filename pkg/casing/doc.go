// Package casing converts identifier names between common casing
// conventions. It splits on explicit separators (dash, underscore,
// space, dot) and on camel boundaries, keeping acronym runs intact.
//
// The package is stateless and goroutine-safe.
//
//	casing.Pascal("meatball_sub") // "MeatballSub"
//	casing.Camel("Some-Name")     // "someName"
package casing
