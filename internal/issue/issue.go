// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	BuildRootMissingId
	TidyConfigInvalidId
	CommandNotFoundId
	TidyFileConflictId
	InvalidGlobId
	FilesFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation for the issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# The configuration file could not be loaded!

The positional <CONFIG_PATH> must point to a readable ` + "`.json`" + ` file whose
fields match the schema. Unknown fields are rejected.

## Things you can try:
- Print the expected schema:
~~~
$ run-clang-tidy schema
~~~
- Check that every path in the file is relative to the file itself`,
	}

	buildRootMissingIssue = &Issue{
		id: BuildRootMissingId,
		mdMsg: `
# No build root!

clang-tidy needs the folder that contains ` + "`compile_commands.json`" + `.

## Things you can try:
- Add the field ` + "`buildRoot`" + ` to your configuration file
- Or pass it on the command line:
~~~
$ run-clang-tidy tidy.json --build-root=build
~~~`,
		extLinks: []HttpLink{"https://clang.llvm.org/docs/JSONCompilationDatabase.html"},
	}

	tidyConfigInvalidIssue = &Issue{
		id: TidyConfigInvalidId,
		mdMsg: `
# Tidy file and tidy root do not match up!

A tidy file is copied into the tidy root while clang-tidy runs, so both
must be configured together, or neither.

## Things you can try:
- Specify ` + "`tidyFile`" + ` (or ` + "`--tidy`" + `) together with ` + "`tidyRoot`" + `
- Remove both to let clang-tidy discover a ` + "`.clang-tidy`" + ` file in the parent folders
- Make sure the tidy file is named ` + "`.clang-tidy`" + ` or ends with ` + "`.clang-tidy`",
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# clang-tidy could not be executed!

The command must print a version string such as ` + "`LLVM version 17.0.6`" + ` when
invoked with ` + "`--version`" + `.

## Things you can try:
- Make sure clang-tidy is installed and in your PATH
- Point to the executable explicitly:
~~~
$ run-clang-tidy tidy.json --command=/usr/bin/clang-tidy-17
~~~`,
		extLinks: []HttpLink{"https://clang.llvm.org/extra/clang-tidy/"},
	}

	tidyFileConflictIssue = &Issue{
		id: TidyFileConflictId,
		mdMsg: `
# An existing .clang-tidy file is in the way!

The tidy root already contains a ` + "`.clang-tidy`" + ` file with different content.
It is left untouched.

## Things you can try:
- Delete the existing file if it is a leftover
- Align its content with the configured tidy file`,
	}

	invalidGlobIssue = &Issue{
		id: InvalidGlobId,
		mdMsg: `
# Invalid glob pattern!

Patterns in ` + "`paths`" + `, ` + "`filterPre`" + ` and ` + "`filterPost`" + ` use shell-style globs,
including ` + "`**`" + ` for any number of folders.

## Things you can try:
- Check for unbalanced ` + "`[`" + ` or ` + "`{`" + `
- Use forward slashes on all platforms`,
		extLinks: []HttpLink{"https://github.com/bmatcuk/doublestar#patterns"},
	}

	filesFailedIssue = &Issue{
		id: FilesFailedId,
		mdMsg: `
# clang-tidy reported errors!

At least one file failed. The output of clang-tidy is listed per file above.

## Things you can try:
- Run again with ` + "`--fix`" + ` to apply available fixes
- Run with ` + "`-v`" + ` to see every invocation`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		buildRootMissingIssue.Id():  buildRootMissingIssue,
		tidyConfigInvalidIssue.Id(): tidyConfigInvalidIssue,
		commandNotFoundIssue.Id():   commandNotFoundIssue,
		tidyFileConflictIssue.Id():  tidyFileConflictIssue,
		invalidGlobIssue.Id():       invalidGlobIssue,
		filesFailedIssue.Id():       filesFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
