//go:build tools

package mobile

// Hält golang.org/x/mobile in go.mod, damit `gomobile bind` dieselbe
// Version wie das Modul verwendet.
import _ "golang.org/x/mobile/bind"
