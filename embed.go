// embed.go declares the embedded data files. It must live in the repository
// root, next to data/, because //go:embed only reaches files below the
// declaring package.
package main

import "embed"

//go:embed data/background.yaml
var dataFS embed.FS
