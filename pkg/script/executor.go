// Package script runs Tengo scripts with the filemode codec available as an
// importable module.
package script

import (
	"context"
	"fmt"

	"github.com/cperrin88/chmodcalc/internal/logger"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var (
	// ErrScriptCompile is returned when a script fails to compile or run.
	ErrScriptCompile = fmt.Errorf("error executing script")

	// ErrScript is returned when a script reports failure through its err global.
	ErrScript = fmt.Errorf("script error")

	// ErrUnsupportedValue is returned when a value cannot be interpreted as a mode.
	ErrUnsupportedValue = fmt.Errorf("value cannot be converted to a file mode")
)

// StdlibModules are the Tengo standard library modules scripts may import.
var StdlibModules = []string{"fmt", "text", "math", "json", "enum"}

// Executor compiles and runs Tengo scripts.
type Executor struct {
	modules *tengo.ModuleMap
}

// NewExecutor creates an executor with the standard modules and the filemode
// module registered.
func NewExecutor() *Executor {
	modules := stdlib.GetModuleMap(StdlibModules...)
	modules.AddBuiltinModule(ModuleName, Module())
	return &Executor{modules: modules}
}

// Run executes src with vars defined as globals and returns the script's
// globals after completion. A non-empty err global is reported as ErrScript.
func (e *Executor) Run(ctx context.Context, src []byte, vars map[string]interface{}) (map[string]interface{}, error) {
	s := tengo.NewScript(src)
	s.SetImports(e.modules)

	for k, v := range vars {
		if err := s.Add(k, v); err != nil {
			return nil, fmt.Errorf("failed to add variable '%s' to script: %w", k, err)
		}
	}

	compiled, err := s.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptCompile, err)
	}

	if errVar := compiled.Get("err"); errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return nil, fmt.Errorf("%w: %w", ErrScript, v)
		case string:
			if v != "" {
				return nil, fmt.Errorf("%w: %s", ErrScript, v)
			}
		}
	}

	globals := make(map[string]interface{})
	for _, v := range compiled.GetAll() {
		globals[v.Name()] = v.Value()
	}
	logger.Debug("Script finished", logger.Fields{"globals": len(globals)})
	return globals, nil
}
