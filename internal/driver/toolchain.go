package driver

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/oxlang/oxc/internal/errors"
)

// candidateCompilers is the probe order: gcc, then
// clang, then cl (MSVC). The first one found on PATH wins.
var candidateCompilers = []string{"gcc", "clang", "cl"}

// ProbeCompiler returns the first available C compiler on PATH, or
// ("", false) if none of gcc/clang/cl is found.
func ProbeCompiler() (string, bool) {
	for _, cc := range candidateCompilers {
		if _, err := exec.LookPath(cc); err == nil {
			return cc, true
		}
	}
	return "", false
}

// InvokeCompiler runs cc against cFile to produce exePath, using
// gcc/clang's `-o` convention or MSVC's `/Fe` convention. Stdout and
// stderr are inherited
func InvokeCompiler(cc, cFile, exePath string) error {
	var cmd *exec.Cmd
	switch cc {
	case "cl":
		cmd = exec.Command(cc, fmt.Sprintf("/Fe%s.exe", exePath), cFile)
	default:
		cmd = exec.Command(cc, "-o", exePath, cFile)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.NewUnlocated(fmt.Sprintf("C compiler %s failed: %v", cc, err))
	}
	return nil
}
