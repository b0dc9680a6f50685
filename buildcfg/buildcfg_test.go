package buildcfg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidsign/keyprovisioner/catalog"
)

func fixtureCatalog() []catalog.Entry {
	return []catalog.Entry{
		{Name: "platform", Family: catalog.PlatformKey},
		{Name: "a", Family: catalog.ApexKey, Role: catalog.RoleNone},
		{Name: "b", Family: catalog.ApexKey, Role: catalog.RoleHardware},
		{Name: "c", Family: catalog.ApexKey, Role: catalog.RoleApp},
	}
}

func TestAndroidBP(t *testing.T) {
	out := AndroidBP(fixtureCatalog())

	assert.True(t, strings.HasPrefix(out, "// DO NOT EDIT THIS FILE MANUALLY\n\n"))
	for _, name := range []string{"a", "b", "c"} {
		assert.Contains(t, out,
			"android_app_certificate {\n"+
				"    name: \""+name+".certificate.override\",\n"+
				"    certificate: \""+name+".certificate.override\",\n"+
				"}",
			"Every apex entry gets a certificate record")
	}
	assert.NotContains(t, out, "platform.certificate.override", "Platform keys get no certificate record")
	assert.True(t, strings.HasSuffix(out, "}\n"), "File ends with a single trailing newline")
}

func TestKeysMK(t *testing.T) {
	out := KeysMK(fixtureCatalog())

	assert.Contains(t, out,
		"PRODUCT_CERTIFICATE_OVERRIDES := \\\n"+
			"    a:a.certificate.override \\\n"+
			"    b:b.certificate.override\n",
		"Regular and hardware apexes each map to their own override")

	assert.Contains(t, out,
		"PRODUCT_CERTIFICATE_OVERRIDES += \\\n"+
			"    b:com.android.hardware.certificate.override\n",
		"Hardware apexes additionally map to the shared hardware certificate")

	assert.Contains(t, out,
		"PRODUCT_CERTIFICATE_OVERRIDES += \\\n"+
			"    c\n",
		"App entries are listed bare")
	assert.NotContains(t, out, "c:c.certificate.override", "App entries get no override of their own")

	assert.Contains(t, out, "PRODUCT_DEFAULT_DEV_CERTIFICATE := vendor/lineage-priv/keys/releasekey\n")
	assert.Contains(t, out, "PRODUCT_EXTRA_RECOVERY_KEYS += vendor/lineage-priv/keys/signed\n")
	assert.True(t, strings.HasPrefix(out, "# DO NOT EDIT THIS FILE MANUALLY\n"))
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestKeysMK_ContinuationPlacement(t *testing.T) {
	out := KeysMK(fixtureCatalog())

	// The last item of each section must not carry a continuation, or
	// make would swallow the following variable assignment.
	require.NotContains(t, out, "b:b.certificate.override \\")
	require.NotContains(t, out, "com.android.hardware.certificate.override \\")
	require.NotContains(t, out, "    c \\")
}

func TestEmission_DefaultCatalog(t *testing.T) {
	entries := catalog.Default()
	bp := AndroidBP(entries)
	mk := KeysMK(entries)

	_, apex := catalog.Partition(entries)
	assert.Equal(t, len(apex), strings.Count(bp, "android_app_certificate {"),
		"One record per apex entry of every role")

	for _, e := range apex {
		switch e.Role {
		case catalog.RoleHardware:
			assert.Contains(t, mk, e.Name+":"+HardwareCertificate)
		case catalog.RoleApp:
			assert.NotContains(t, mk, e.Name+":", "App entry %q must be listed bare", e.Name)
		default:
			assert.Contains(t, mk, e.Name+":"+e.Name+".certificate.override")
		}
	}
}
