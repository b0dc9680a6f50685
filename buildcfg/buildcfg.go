package buildcfg

import (
	"fmt"
	"strings"

	"github.com/droidsign/keyprovisioner/catalog"
)

// HardwareCertificate is the shared certificate override every
// hardware apex maps to in the emitted makefile.
const HardwareCertificate = "com.android.hardware.certificate.override"

// Fixed product-wide key locations emitted at the end of the makefile.
const (
	defaultDevCertificate = "vendor/lineage-priv/keys/releasekey"
	extraRecoveryKeys     = "vendor/lineage-priv/keys/signed"
)

// AndroidBP renders the build-metadata file declaring one
// android_app_certificate record per apex entry, in catalog order.
func AndroidBP(entries []catalog.Entry) string {
	_, apex := catalog.Partition(entries)

	blocks := make([]string, 0, len(apex))
	for _, e := range apex {
		blocks = append(blocks, fmt.Sprintf(
			"android_app_certificate {\n"+
				"    name: %q,\n"+
				"    certificate: %q,\n"+
				"}",
			e.Name+".certificate.override",
			e.Name+".certificate.override",
		))
	}

	return "// DO NOT EDIT THIS FILE MANUALLY\n\n" + strings.Join(blocks, "\n\n") + "\n"
}

// KeysMK renders the make-style variable file consumed by the product
// configuration. It contains three certificate override sections: every
// regular and hardware apex mapped to its own override, hardware
// apexes additionally mapped to the shared hardware certificate, and
// app entries listed bare. Two fixed product-wide key path variables
// close the file.
func KeysMK(entries []catalog.Entry) string {
	_, apex := catalog.Partition(entries)

	var own, hardware, apps []string
	for _, e := range apex {
		switch e.Role {
		case catalog.RoleNone, catalog.RoleHardware:
			own = append(own, fmt.Sprintf("%s:%s.certificate.override", e.Name, e.Name))
		case catalog.RoleApp:
			apps = append(apps, e.Name)
		}
		if e.Role == catalog.RoleHardware {
			hardware = append(hardware, fmt.Sprintf("%s:%s", e.Name, HardwareCertificate))
		}
	}

	sections := []string{
		"# DO NOT EDIT THIS FILE MANUALLY",
		"",
		"PRODUCT_CERTIFICATE_OVERRIDES := \\",
		continuationList(own),
		"",
		"PRODUCT_CERTIFICATE_OVERRIDES += \\",
		continuationList(hardware),
		"",
		"PRODUCT_CERTIFICATE_OVERRIDES += \\",
		continuationList(apps),
		"",
		"PRODUCT_DEFAULT_DEV_CERTIFICATE := " + defaultDevCertificate,
		"PRODUCT_EXTRA_RECOVERY_KEYS += " + extraRecoveryKeys,
		"",
	}

	return strings.Join(sections, "\n")
}

// continuationList indents each item and joins them with make line
// continuations, leaving the last line bare.
func continuationList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i < len(items)-1 {
			lines[i] = "    " + item + " \\"
		} else {
			lines[i] = "    " + item
		}
	}
	return strings.Join(lines, "\n")
}
