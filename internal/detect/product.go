package detect

import (
	"strings"

	"github.com/google/uuid"
)

// productCodeFromSubkey treats a `{GUID}`-shaped uninstall subkey name as an
// MSI product code, validating the GUID so arbitrary braced names don't get
// handed to msiexec.
func productCodeFromSubkey(name string) (string, bool) {
	if !strings.HasPrefix(name, "{") || !strings.HasSuffix(name, "}") {
		return "", false
	}
	if _, err := uuid.Parse(strings.Trim(name, "{}")); err != nil {
		return "", false
	}
	return name, true
}
