package catalog

// platformNames lists the platform signing keys in the order their
// bundles are reported. The names match what the build system expects
// under the private key directory.
var platformNames = []string{
	"bluetooth",
	"media",
	"networkstack",
	"nfc",
	"platform",
	"releasekey",
	"sdk_sandbox",
	"shared",
	"testkey",
	"verity",
}

// apexNames lists the APEX modules that get their own certificate
// override, in emission order.
var apexNames = []string{
	"com.android.adbd",
	"com.android.adservices",
	"com.android.adservices.api",
	"com.android.appsearch",
	"com.android.art",
	"com.android.bluetooth",
	"com.android.btservices",
	"com.android.cellbroadcast",
	"com.android.compos",
	"com.android.configinfrastructure",
	"com.android.connectivity.resources",
	"com.android.conscrypt",
	"com.android.devicelock",
	"com.android.extservices",
	"com.android.graphics.pdf",
	"com.android.healthfitness",
	"com.android.i18n",
	"com.android.ipsec",
	"com.android.media",
	"com.android.media.swcodec",
	"com.android.mediaprovider",
	"com.android.neuralnetworks",
	"com.android.ondevicepersonalization",
	"com.android.os.statsd",
	"com.android.permission",
	"com.android.resolv",
	"com.android.rkpd",
	"com.android.runtime",
	"com.android.scheduling",
	"com.android.sdkext",
	"com.android.telephony",
	"com.android.tethering",
	"com.android.tzdata",
	"com.android.uwb",
	"com.android.virt",
	"com.android.vndk",
	"com.android.wifi",
}

// apexHardwareNames lists the hardware APEXes. They also appear in the
// shared hardware certificate override block of the emitted makefile.
var apexHardwareNames = []string{
	"com.android.hardware.authsecret",
	"com.android.hardware.biometrics.face.virtual",
	"com.android.hardware.biometrics.fingerprint.virtual",
	"com.android.hardware.boot",
	"com.android.hardware.cas",
	"com.android.hardware.gatekeeper.nonsecure",
	"com.android.hardware.neuralnetworks",
	"com.android.hardware.rebootescrow",
	"com.android.hardware.wifi",
}

// apexAppNames lists app payloads that are signed with their own apex
// key but listed bare (no override suffix) in the emitted makefile.
var apexAppNames = []string{
	"com.android.hotspot2.osulogin",
	"com.android.nearby.halfsheet",
	"com.android.safetycenter.resources",
	"com.android.uwb.resources",
	"com.android.wifi.dialog",
	"com.android.wifi.resources",
}

// Default returns the full provisioning catalog: platform keys first,
// then apex keys grouped by role. The returned slice is freshly
// allocated on every call so callers may not corrupt the catalog for
// each other.
func Default() []Entry {
	entries := make([]Entry, 0, len(platformNames)+len(apexNames)+len(apexHardwareNames)+len(apexAppNames))
	for _, name := range platformNames {
		entries = append(entries, Entry{Name: name, Family: PlatformKey})
	}
	for _, name := range apexNames {
		entries = append(entries, Entry{Name: name, Family: ApexKey, Role: RoleNone})
	}
	for _, name := range apexHardwareNames {
		entries = append(entries, Entry{Name: name, Family: ApexKey, Role: RoleHardware})
	}
	for _, name := range apexAppNames {
		entries = append(entries, Entry{Name: name, Family: ApexKey, Role: RoleApp})
	}
	return entries
}
