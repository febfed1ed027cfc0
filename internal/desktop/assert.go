package desktop

import (
	"deskpilot/internal/codegen"
	"deskpilot/internal/email"
	"deskpilot/internal/executor"
	"deskpilot/internal/function"
)

var (
	_ executor.Input   = (*Simulator)(nil)
	_ function.Actions = (*Simulator)(nil)
	_ email.Clipboard  = (*Simulator)(nil)
	_ codegen.Runner   = (*Simulator)(nil)
)
