//go:build windows

package detect

import (
	"context"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/sweepkit/agent/internal/regpath"
	"github.com/sweepkit/agent/internal/signature"
)

const uninstallPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`

// Uninstall registration roots: machine-wide 64-bit and 32-bit views, then
// the per-user hive (which has a single view).
var uninstallRoots = []struct {
	root  registry.Key
	hive  string
	path  string
	views []uint32
}{
	{registry.LOCAL_MACHINE, regpath.HiveLocalMachine, uninstallPath, []uint32{registry.WOW64_64KEY, registry.WOW64_32KEY}},
	{registry.CURRENT_USER, regpath.HiveCurrentUser, uninstallPath, []uint32{0}},
}

// RegistryDetector scans installed-software uninstall registrations.
// Cheapest and most reliable surface; runs first.
type RegistryDetector struct{}

func (RegistryDetector) Name() string { return "registry" }

func (RegistryDetector) Scan(ctx context.Context, catalog *signature.Catalog, acc *Accumulator) error {
	sigs := catalog.Entries()
	for _, root := range uninstallRoots {
		for _, view := range root.views {
			if err := ctx.Err(); err != nil {
				return err
			}
			key, err := registry.OpenKey(root.root, root.path, registry.READ|view)
			if err != nil {
				// A missing or unreadable root is expected on some
				// systems; the other roots still get scanned.
				log.Info("uninstall root unavailable", "hive", root.hive, "view", view, "error", err)
				continue
			}
			scanUninstallRoot(key, root.hive, root.path, sigs, acc)
			key.Close()
		}
	}
	return nil
}

func scanUninstallRoot(key registry.Key, hive, path string, sigs []signature.Entry, acc *Accumulator) {
	subkeys, err := key.ReadSubKeyNames(-1)
	if err != nil {
		log.Warn("enumerate uninstall subkeys", "hive", hive, "error", err)
		return
	}

	for _, subkeyName := range subkeys {
		subkey, err := registry.OpenKey(key, subkeyName, registry.READ)
		if err != nil {
			continue
		}
		entry := readUninstallEntry(subkey, subkeyName)
		subkey.Close()

		if entry.displayName == "" {
			continue
		}

		// First catalog match wins for this subkey.
		for _, sig := range sigs {
			if !signature.Matches(entry.displayName, entry.publisher, sig.Detection) {
				continue
			}
			acc.Add(Detection{
				Name:             entry.displayName,
				Category:         sig.Category,
				Method:           MethodRegistry,
				Version:          entry.version,
				Publisher:        entry.publisher,
				InstallLocation:  entry.installLocation,
				UninstallCommand: entry.uninstallString,
				ProductCode:      entry.productCode,
				RegistryKeyPath:  regpath.Join(hive, path+`\`+subkeyName),
				VendorHint:       entry.publisher,
				DetectionTerm:    sig.Name,
				Reason:           sig.Reason,
			})
			break
		}
	}
}

type uninstallEntry struct {
	displayName     string
	publisher       string
	version         string
	uninstallString string
	installLocation string
	productCode     string
}

func readUninstallEntry(key registry.Key, subkeyName string) uninstallEntry {
	e := uninstallEntry{}
	e.displayName = readStringValue(key, "DisplayName")
	e.publisher = readStringValue(key, "Publisher")
	e.version = readStringValue(key, "DisplayVersion")
	e.uninstallString = readStringValue(key, "UninstallString")
	e.installLocation = readStringValue(key, "InstallLocation")
	if code, ok := productCodeFromSubkey(subkeyName); ok {
		e.productCode = code
	}
	return e
}

func readStringValue(key registry.Key, name string) string {
	val, _, err := key.GetStringValue(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(val)
}
