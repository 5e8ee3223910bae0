package audit

import (
	"fmt"
	"strings"
)

// AuditType is a bit set of accessibility audit categories.
// Bit positions follow the host framework's option set.
type AuditType uint64

const (
	AuditTypeContrast                     AuditType = 1 << 0
	AuditTypeElementDetection             AuditType = 1 << 1
	AuditTypeHitRegion                    AuditType = 1 << 2
	AuditTypeSufficientElementDescription AuditType = 1 << 3

	// Touch platforms only.
	AuditTypeDynamicType AuditType = 1 << 16
	AuditTypeTextClipped AuditType = 1 << 17
	AuditTypeTrait       AuditType = 1 << 18

	// Desktop only.
	AuditTypeAction      AuditType = 1 << 32
	AuditTypeParentChild AuditType = 1 << 33

	// AuditTypeAll requests every category the host supports.
	AuditTypeAll AuditType = ^AuditType(0)
)

// UnknownType is the tag emitted when an issue matches no known category.
const UnknownType = "unknownType"

// Contains reports whether every bit of other is set in t.
func (t AuditType) Contains(other AuditType) bool {
	return t&other == other
}

// Tag pairs an audit category flag with the name reported to the collector.
type Tag struct {
	Type AuditType
	Name string
}

// Platform is the ordered list of categories a target platform can raise.
// The order of Tags is the order in which tag names are emitted.
type Platform struct {
	Name string
	Tags []Tag
}

var commonTags = []Tag{
	{AuditTypeContrast, "contrast"},
	{AuditTypeElementDetection, "elementDetection"},
	{AuditTypeHitRegion, "hitRegion"},
	{AuditTypeSufficientElementDescription, "sufficientElementDescription"},
}

var (
	// Touch covers iOS, tvOS and watchOS.
	Touch = Platform{
		Name: "touch",
		Tags: append(append([]Tag{}, commonTags...),
			Tag{AuditTypeDynamicType, "dynamicType"},
			Tag{AuditTypeTextClipped, "textClipped"},
			Tag{AuditTypeTrait, "trait"},
		),
	}

	// Desktop covers macOS.
	Desktop = Platform{
		Name: "desktop",
		Tags: append(append([]Tag{}, commonTags...),
			Tag{AuditTypeAction, "action"},
			Tag{AuditTypeParentChild, "parentChild"},
		),
	}
)

// Describe returns the tag names set in t, in the platform's declared order,
// joined with ", ". It returns UnknownType when no tag matches.
func (p Platform) Describe(t AuditType) string {
	var names []string
	for _, tag := range p.Tags {
		if t.Contains(tag.Type) {
			names = append(names, tag.Name)
		}
	}
	if len(names) == 0 {
		return UnknownType
	}
	return strings.Join(names, ", ")
}

// ParseAuditType returns the flag for a tag name known to the platform.
// "all" selects AuditTypeAll.
func (p Platform) ParseAuditType(name string) (AuditType, error) {
	if name == "all" {
		return AuditTypeAll, nil
	}
	for _, tag := range p.Tags {
		if tag.Name == name {
			return tag.Type, nil
		}
	}
	return 0, fmt.Errorf("unknown audit type %q for platform %s", name, p.Name)
}

// ParsePlatform returns the platform with the given name.
func ParsePlatform(name string) (Platform, error) {
	switch name {
	case Touch.Name:
		return Touch, nil
	case Desktop.Name:
		return Desktop, nil
	default:
		return Platform{}, fmt.Errorf("unknown platform: %s", name)
	}
}
