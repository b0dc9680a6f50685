package catalog

import (
	"errors"
	"fmt"
)

// Family identifies which signing-key family a catalog entry belongs to.
type Family int

const (
	// PlatformKey entries sign the platform build itself (system apps,
	// OTA packages, the framework).
	PlatformKey Family = iota

	// ApexKey entries sign updatable APEX modules and carry a
	// per-module certificate override.
	ApexKey
)

// String returns a short lowercase name for the family, used in logs.
func (f Family) String() string {
	switch f {
	case PlatformKey:
		return "platform"
	case ApexKey:
		return "apex"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ApexRole annotates an apex entry for build-configuration emission.
// It has no effect on key generation.
type ApexRole int

const (
	// RoleNone marks a regular APEX module.
	RoleNone ApexRole = iota

	// RoleHardware marks a hardware APEX that additionally maps to the
	// shared hardware certificate override in the emitted makefile.
	RoleHardware

	// RoleApp marks an app payload signed alongside the APEXes; it is
	// listed in the makefile without a certificate override suffix.
	RoleApp
)

// Entry is one named signing identity to provision. Name is the
// identity: all output filenames are derived from it, so it must be
// unique within its family.
type Entry struct {
	Name   string
	Family Family
	Role   ApexRole
}

// Validate checks the catalog invariants: no empty names, and no two
// entries of the same family sharing a name. Shared names would make
// two provisioning tasks race on the same output files.
func Validate(entries []Entry) error {
	type key struct {
		family Family
		name   string
	}
	seen := make(map[key]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return errors.New("catalog entry with empty name")
		}
		k := key{e.Family, e.Name}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate %s key name %q", e.Family, e.Name)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Partition splits a catalog into its platform and apex entries,
// preserving order within each family.
func Partition(entries []Entry) (platform, apex []Entry) {
	for _, e := range entries {
		switch e.Family {
		case PlatformKey:
			platform = append(platform, e)
		case ApexKey:
			apex = append(apex, e)
		}
	}
	return platform, apex
}
