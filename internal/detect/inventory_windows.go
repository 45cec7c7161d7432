//go:build windows

package detect

import (
	"context"
	"fmt"

	"github.com/yusufpapurcu/wmi"

	"github.com/sweepkit/agent/internal/signature"
)

// Win32_Product mirrors the WMI class of the same name; the type name is
// what the query generator derives the class name from.
type Win32_Product struct {
	Name              string
	Vendor            string
	Version           string
	InstallLocation   string
	IdentifyingNumber string
}

// InventoryDetector queries the MSI installed-products inventory.
// Win32_Product enumeration is notoriously slow (it reconfigures products
// as a side effect of the provider), so this detector runs after the cheap
// surfaces.
type InventoryDetector struct{}

func (InventoryDetector) Name() string { return "inventory" }

func (InventoryDetector) Scan(ctx context.Context, catalog *signature.Catalog, acc *Accumulator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var products []Win32_Product
	q := wmi.CreateQuery(&products, "")
	if err := wmi.Query(q, &products); err != nil {
		return fmt.Errorf("detect: wmi query: %w", err)
	}

	sigs := catalog.Entries()
	for _, p := range products {
		if p.Name == "" {
			continue
		}
		for _, sig := range sigs {
			if !signature.Matches(p.Name, p.Vendor, sig.Detection) {
				continue
			}
			d := Detection{
				Name:            p.Name,
				Category:        sig.Category,
				Method:          MethodInventory,
				Version:         p.Version,
				Publisher:       p.Vendor,
				InstallLocation: p.InstallLocation,
				ProductCode:     p.IdentifyingNumber,
				VendorHint:      p.Vendor,
				DetectionTerm:   sig.Name,
				Reason:          sig.Reason,
			}
			if p.IdentifyingNumber != "" {
				d.UninstallCommand = fmt.Sprintf("msiexec.exe /x %s /qn", p.IdentifyingNumber)
			}
			acc.Add(d)
			break
		}
	}
	return nil
}
