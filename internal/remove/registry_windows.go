//go:build windows

package remove

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/sweepkit/agent/internal/detect"
	"github.com/sweepkit/agent/internal/regpath"
)

var registryViews = []uint32{registry.WOW64_64KEY, registry.WOW64_32KEY}

// cleanRegistry (M6) deletes the uninstall entry that detected the
// application and sweeps HKLM/HKCU software keys named after it or its
// vendor.
func (r *Remover) cleanRegistry(ctx context.Context, d detect.Detection, res *Result) {
	deleted := 0
	var firstErr error

	if d.RegistryKeyPath != "" {
		for _, view := range registryViews {
			switch err := r.deleteQualifiedKey(d.RegistryKeyPath, view); {
			case err == nil:
				deleted++
			case isRegNotExist(err):
				// Other view, or already gone.
			default:
				if firstErr == nil {
					firstErr = err
				}
				log.Warn("delete uninstall key", "path", d.RegistryKeyPath, "error", err)
			}
		}
	}

	terms := simplifyTerms(append([]string{d.Name, d.VendorHint}, r.terms(d)...)...)
	deleted += r.sweepSoftwareKeys(ctx, terms)

	switch {
	case deleted > 0:
		res.record(StepRegistryClean, true, fmt.Sprintf("deleted %d keys", deleted))
	case firstErr != nil:
		res.record(StepRegistryClean, false, firstErr.Error())
	default:
		res.record(StepRegistryClean, false, "no keys deleted")
	}
}

// deleteQualifiedKey removes a HKLM\... or HKCU\... path in one registry
// view.
func (r *Remover) deleteQualifiedKey(path string, view uint32) error {
	root, sub, err := regpath.Root(path)
	if err != nil {
		return err
	}
	idx := strings.LastIndexByte(sub, '\\')
	if idx < 0 {
		return fmt.Errorf("remove: refusing to delete top-level key %q", path)
	}
	parentPath, child := sub[:idx], sub[idx+1:]

	parent, err := registry.OpenKey(root, parentPath, registry.ENUMERATE_SUB_KEYS|view)
	if err != nil {
		return err
	}
	defer parent.Close()
	return r.deleteKeyTree(parent, child, view)
}

// sweepSoftwareKeys walks the top two levels under each SOFTWARE hive and
// deletes keys whose name exactly matches a simplified term. Substring
// matches are deliberately not deleted at this level.
func (r *Remover) sweepSoftwareKeys(ctx context.Context, terms []string) int {
	deleted := 0
	for _, root := range []registry.Key{registry.LOCAL_MACHINE, registry.CURRENT_USER} {
		for _, view := range registryViews {
			if ctx.Err() != nil {
				return deleted
			}
			deleted += r.sweepSoftwareRoot(root, view, terms)
		}
	}
	return deleted
}

func (r *Remover) sweepSoftwareRoot(root registry.Key, view uint32, terms []string) int {
	software, err := registry.OpenKey(root, `SOFTWARE`, registry.ENUMERATE_SUB_KEYS|view)
	if err != nil {
		return 0
	}
	defer software.Close()

	names, err := software.ReadSubKeyNames(-1)
	if err != nil {
		return 0
	}

	deleted := 0
	for _, name := range names {
		if equalsAnyTerm(name, terms) {
			if err := r.deleteKeyTree(software, name, view); err != nil {
				log.Warn("delete software key", "key", name, "error", err)
				continue
			}
			deleted++
			log.Info("deleted software key", "key", name)
			continue
		}
		deleted += r.sweepVendorSubkeys(software, name, view, terms)
	}
	return deleted
}

// sweepVendorSubkeys checks one level deeper: Vendor\Product layouts where
// only the product key matches.
func (r *Remover) sweepVendorSubkeys(software registry.Key, vendor string, view uint32, terms []string) int {
	k, err := registry.OpenKey(software, vendor, registry.ENUMERATE_SUB_KEYS|view)
	if err != nil {
		return 0
	}
	defer k.Close()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return 0
	}

	deleted := 0
	for _, name := range names {
		if !equalsAnyTerm(name, terms) {
			continue
		}
		if err := r.deleteKeyTree(k, name, view); err != nil {
			log.Warn("delete software key", "vendor", vendor, "key", name, "error", err)
			continue
		}
		deleted++
		log.Info("deleted software key", "vendor", vendor, "key", name)
	}
	return deleted
}

// deleteKeyTree removes a key and everything below it. The parent handle
// carries the registry view, so relative deletion stays in that view.
func (r *Remover) deleteKeyTree(parent registry.Key, name string, view uint32) error {
	if r.dryRun {
		log.Info("dry run: would delete registry key", "key", name)
		return nil
	}
	k, err := registry.OpenKey(parent, name, registry.ENUMERATE_SUB_KEYS|view)
	if err != nil {
		return err
	}
	subs, err := k.ReadSubKeyNames(-1)
	if err != nil {
		k.Close()
		return err
	}
	for _, sub := range subs {
		if err := r.deleteKeyTree(k, sub, view); err != nil {
			k.Close()
			return err
		}
	}
	k.Close()
	return registry.DeleteKey(parent, name)
}

func isRegNotExist(err error) bool {
	return err == registry.ErrNotExist
}
