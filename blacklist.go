package switcherprefs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// HidePolicy controls when a blacklisted application is hidden from the switcher.
type HidePolicy int

const (
	HideNone             HidePolicy = 0
	HideAlways           HidePolicy = 1
	HideWhenNoOpenWindow HidePolicy = 2
)

var hidePolicyCases = enumTable[HidePolicy]{
	{HideNone, "none"},
	{HideAlways, "always"},
	{HideWhenNoOpenWindow, "whenNoOpenWindow"},
}

func (p HidePolicy) String() string { return hidePolicyCases.name(p) }

// MarshalText encodes the numeric code; the blacklist JSON stores codes as strings.
func (p HidePolicy) MarshalText() ([]byte, error) {
	if _, err := hidePolicyCases.marshal(p); err != nil {
		return nil, err
	}
	return []byte(strconv.Itoa(int(p))), nil
}

func (p *HidePolicy) UnmarshalText(b []byte) (err error) {
	*p, err = hidePolicyCases.parse(string(b))
	return err
}

// IgnorePolicy controls when the switcher shortcuts are disabled while a
// blacklisted application is focused.
type IgnorePolicy int

const (
	IgnoreNone           IgnorePolicy = 0
	IgnoreAlways         IgnorePolicy = 1
	IgnoreWhenFullscreen IgnorePolicy = 2
)

var ignorePolicyCases = enumTable[IgnorePolicy]{
	{IgnoreNone, "none"},
	{IgnoreAlways, "always"},
	{IgnoreWhenFullscreen, "whenFullscreen"},
}

func (p IgnorePolicy) String() string { return ignorePolicyCases.name(p) }

func (p IgnorePolicy) MarshalText() ([]byte, error) {
	if _, err := ignorePolicyCases.marshal(p); err != nil {
		return nil, err
	}
	return []byte(strconv.Itoa(int(p))), nil
}

func (p *IgnorePolicy) UnmarshalText(b []byte) (err error) {
	*p, err = ignorePolicyCases.parse(string(b))
	return err
}

// BlacklistEntry is a per-application override. BundleIdentifier may be a
// prefix such as "com.parallels.".
type BlacklistEntry struct {
	BundleIdentifier string       `json:"bundleIdentifier" yaml:"bundleIdentifier"`
	Hide             HidePolicy   `json:"hide" yaml:"hide"`
	Ignore           IgnorePolicy `json:"ignore" yaml:"ignore"`
}

// remoteDesktopApps capture every keystroke while fullscreen, so the switcher
// stays out of their way.
var remoteDesktopApps = []string{
	"com.microsoft.rdc.macos",
	"com.teamviewer.TeamViewer",
	"org.virtualbox.app.VirtualBoxVM",
	"com.parallels.",
	"com.citrix.XenAppViewer",
	"com.citrix.receiver.icaviewer.mac",
	"com.nicesoftware.dcvviewer",
	"com.vmware.fusion",
	"com.apple.ScreenSharing",
	"com.utmapp.UTM",
}

// DefaultBlacklist returns a fresh copy of the built-in blacklist.
func DefaultBlacklist() []BlacklistEntry {
	entries := []BlacklistEntry{
		{BundleIdentifier: "com.McAfee.McAfeeSafariHost", Hide: HideAlways, Ignore: IgnoreNone},
		{BundleIdentifier: "com.apple.finder", Hide: HideWhenNoOpenWindow, Ignore: IgnoreNone},
	}
	for _, id := range remoteDesktopApps {
		entries = append(entries, BlacklistEntry{BundleIdentifier: id, Hide: HideNone, Ignore: IgnoreWhenFullscreen})
	}
	return entries
}

func encodeBlacklist(entries []BlacklistEntry) (string, error) {
	if entries == nil {
		entries = []BlacklistEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return string(data), nil
}

func decodeBlacklist(raw string) ([]BlacklistEntry, error) {
	var entries []BlacklistEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if entries == nil {
		entries = []BlacklistEntry{}
	}
	return entries, nil
}

// legacyBlacklistEntries converts a newline separated list of bundle
// identifiers, as stored before 6.42.0, to entries sharing one policy.
func legacyBlacklistEntries(old string, hide HidePolicy, ignore IgnorePolicy) []BlacklistEntry {
	var entries []BlacklistEntry
	for _, line := range strings.Split(old, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, BlacklistEntry{BundleIdentifier: line, Hide: hide, Ignore: ignore})
	}
	return entries
}
