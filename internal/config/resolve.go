// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"log/slog"
	"time"

	"run-clang-tidy/pkg/fspath"
)

// Pairing kinds of the tidy file and tidy root settings.
const (
	PairingUnspecified PairingKind = iota
	PairingFileOnly
	PairingRootOnly
	PairingBoth
)

type (
	// PairingKind tells which of tidy file and tidy root are configured.
	PairingKind int

	// TidyPairing is the tidy file together with the root it is staged into.
	// Only PairingUnspecified and PairingBoth survive resolution.
	TidyPairing struct {
		Kind PairingKind
		File string
		Root string
	}

	// EffectiveConfig is the resolved configuration of a run.
	EffectiveConfig struct {
		Tidy           TidyPairing
		BuildRoot      string
		Command        string
		Jobs           *int
		IgnoreWarnings bool
		Fix            bool
		Timeout        time.Duration

		// Overridden lists the document fields whose value was replaced by
		// an override.
		Overridden []string
	}

	// origin tells where a setting's value came from.
	origin int
)

const (
	fromNone origin = iota
	fromDocument
	fromOverride
)

// String implements fmt.Stringer.
func (k PairingKind) String() string {
	switch k {
	case PairingUnspecified:
		return "unspecified"
	case PairingFileOnly:
		return "file only"
	case PairingRootOnly:
		return "root only"
	case PairingBoth:
		return "file and root"
	default:
		return fmt.Sprintf("PairingKind(%d)", int(k))
	}
}

// pairingOf classifies the presence of tidy file and tidy root.
func pairingOf(hasFile, hasRoot bool) PairingKind {
	switch {
	case hasFile && hasRoot:
		return PairingBoth
	case hasFile:
		return PairingFileOnly
	case hasRoot:
		return PairingRootOnly
	default:
		return PairingUnspecified
	}
}

// Staged returns the tidy file and its destination root when both are set.
func (p TidyPairing) Staged() (file, root string, ok bool) {
	if p.Kind != PairingBoth {
		return "", "", false
	}
	return p.File, p.Root, true
}

// Resolve merges the document with the overrides. Overrides always win over
// document values. Override paths are validated immediately; document values
// are validated when the setting they belong to is resolved.
func Resolve(doc *Document, ov Overrides) (*EffectiveConfig, error) {
	if err := validateOverrides(ov); err != nil {
		return nil, err
	}

	cfg := &EffectiveConfig{
		Jobs:           ov.Jobs,
		IgnoreWarnings: ov.IgnoreWarnings,
		Fix:            ov.Fix,
		Timeout:        ov.Timeout,
	}

	tidy, err := resolveTidy(doc, ov, cfg)
	if err != nil {
		return nil, err
	}
	cfg.Tidy = tidy

	if cfg.BuildRoot, err = resolveBuildRoot(doc, ov, cfg); err != nil {
		return nil, err
	}
	if cfg.Command, err = resolveCommand(doc, ov, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateOverrides(ov Overrides) error {
	if ov.TidyFile != "" {
		if _, err := fspath.HasNameOrExtension(ov.TidyFile, TidyFileName); err != nil {
			return configError("parse option", "--"+KeyTidy, err,
				fmt.Sprintf("Make sure that '--%s' names an existing file called '%s' or with the extension '%s'",
					KeyTidy, TidyFileName, TidyFileName))
		}
	}
	if ov.BuildRoot != "" {
		if _, err := fspath.DirOrErr(ov.BuildRoot); err != nil {
			return configError("parse option", "--"+KeyBuildRoot, err,
				fmt.Sprintf("Please make sure that '--%s' is either a valid absolute path or "+
					"a valid path relative to the current working directory", KeyBuildRoot))
		}
	}
	return nil
}

// pick selects between the document value and the override of a setting,
// recording and logging the replacement of a document value.
func pick(doc *Document, cfg *EffectiveConfig, field, docValue, override string) (string, origin) {
	switch {
	case override != "" && docValue != "":
		slog.Debug("override detected",
			"field", field,
			"document", doc.Name,
			"value", docValue,
			"override", override)
		cfg.Overridden = append(cfg.Overridden, field)
		return override, fromOverride
	case override != "":
		return override, fromOverride
	case docValue != "":
		return docValue, fromDocument
	default:
		return "", fromNone
	}
}

func resolveTidy(doc *Document, ov Overrides, cfg *EffectiveConfig) (TidyPairing, error) {
	const op = "resolve tidy configuration"

	file, fileOrigin := pick(doc, cfg, "tidyFile", doc.TidyFile, ov.TidyFile)
	kind := pairingOf(fileOrigin != fromNone, doc.TidyRoot != "")

	switch kind {
	case PairingUnspecified:
		return TidyPairing{Kind: kind}, nil
	case PairingFileOnly:
		return TidyPairing{}, resolutionError(SettingTidy, op, doc.Name,
			fmt.Sprintf("found tidy file '%s' but could not find a 'tidyRoot' to copy it into", file),
			fmt.Sprintf("Please add the field 'tidyRoot' to %s", doc.Name))
	case PairingRootOnly:
		return TidyPairing{}, resolutionError(SettingTidy, op, doc.Name,
			"a valid tidy file must be specified for configurations with the field 'tidyRoot'",
			fmt.Sprintf("Specify the tidy file using '--%s' or the field 'tidyFile' in %s", KeyTidy, doc.Name))
	}

	var tidyFile string
	if fileOrigin == fromOverride {
		canonical, err := fspath.Canonical(file)
		if err != nil {
			return TidyPairing{}, configError("parse option", "--"+KeyTidy, err)
		}
		tidyFile = canonical
	} else {
		path, err := fspath.HasNameOrExtension(doc.resolve(file), TidyFileName)
		if err == nil {
			path, err = fspath.Canonical(path)
		}
		if err != nil {
			return TidyPairing{}, fieldError("tidyFile", doc, err)
		}
		tidyFile = path
	}

	root, err := fspath.DirOrErr(doc.resolve(doc.TidyRoot))
	if err == nil {
		root, err = fspath.Canonical(root)
	}
	if err != nil {
		return TidyPairing{}, fieldError("tidyRoot", doc, err,
			"Please make sure that 'tidyRoot' is a valid directory and check the access permissions")
	}

	return TidyPairing{Kind: PairingBoth, File: tidyFile, Root: root}, nil
}

func resolveBuildRoot(doc *Document, ov Overrides, cfg *EffectiveConfig) (string, error) {
	value, from := pick(doc, cfg, "buildRoot", doc.BuildRoot, ov.BuildRoot)

	switch from {
	case fromNone:
		return "", resolutionError(SettingBuildRoot, "resolve build root", doc.Name,
			"build root must either be specified as command-line parameter or within the configuration file",
			fmt.Sprintf("Add the field 'buildRoot' to %s", doc.Name),
			fmt.Sprintf("Or pass the folder containing compile_commands.json with '--%s'", KeyBuildRoot))
	case fromOverride:
		canonical, err := fspath.Canonical(value)
		if err != nil {
			return "", configError("parse option", "--"+KeyBuildRoot, err)
		}
		return canonical, nil
	}

	path, err := fspath.DirOrErr(doc.resolve(value))
	if err == nil {
		path, err = fspath.Canonical(path)
	}
	if err != nil {
		return "", fieldError("buildRoot", doc, err)
	}
	return path, nil
}

func resolveCommand(doc *Document, ov Overrides, cfg *EffectiveConfig) (string, error) {
	value, from := pick(doc, cfg, "command", doc.Command, ov.Command)

	switch from {
	case fromNone:
		return DefaultCommand, nil
	case fromOverride:
		// checked by the probe
		return value, nil
	}

	path, err := fspath.ResolveExecutableOrName(value, doc.Root)
	if err != nil {
		return "", fieldError("command", doc, err,
			"When using relative paths for the field 'command' please make sure to provide "+
				"a valid path relative to the directory of the configuration file")
	}
	return path, nil
}

// fieldError reports an invalid document field. Without explicit
// suggestions it points the user at the field.
func fieldError(field string, doc *Document, cause error, suggestions ...string) error {
	if len(suggestions) == 0 {
		suggestions = []string{fmt.Sprintf("Check the content of the field '%s' in %s", field, doc.Name)}
	}
	return actionable(fmt.Sprintf("resolve configuration for '%s'", field), doc.Name, cause, suggestions)
}
