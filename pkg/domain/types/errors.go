package types

import "github.com/m-mizutani/goerr/v2"

// Error tags for fatal conditions. The CLI logs them once and exits with 1.
var (
	ErrTagBuildFailed        = goerr.NewTag("build_failed")
	ErrTagToolNotFound       = goerr.NewTag("tool_not_found")
	ErrTagExecutableNotFound = goerr.NewTag("executable_not_found")
	ErrTagBindingsNotFound   = goerr.NewTag("bindings_not_found")
	ErrTagInvalidConfig      = goerr.NewTag("invalid_config")
)
