package buildinfo

import (
    "runtime"
    "runtime/debug"
)

// Set via -ldflags "-X poiroute/internal/buildinfo.Version=..." at release time.
var (
    Version = "dev"
    Commit  = ""
    BuiltAt = ""
)

// Info reports the linked build metadata, falling back to the VCS stamp the
// Go toolchain embeds when Commit was not set by the linker.
func Info() map[string]string {
    commit := Commit
    if commit == "" {
        if bi, ok := debug.ReadBuildInfo(); ok {
            for _, s := range bi.Settings {
                if s.Key == "vcs.revision" { commit = s.Value }
            }
        }
    }
    return map[string]string{
        "version":   Version,
        "commit":    commit,
        "builtAt":   BuiltAt,
        "goVersion": runtime.Version(),
    }
}
