// Package internal contains the core infrastructure for the cardui framework:
// SDL setup, input mapping, fonts, icons, theming and drawing helpers.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
