// Package npm reads the command context npm exposes to lifecycle scripts.
package npm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/harrison/pubcop/internal/models"
)

// Environment variables set by npm for lifecycle scripts
const (
	EnvPackageVersion = "npm_package_version"
	EnvConfigArgv     = "npm_config_argv"
	EnvCommand        = "npm_command"
	EnvConfigTag      = "npm_config_tag"
	EnvLifecycleEvent = "npm_lifecycle_event"
)

// runScriptCommand is the npm_command value for "npm run <script>".
const runScriptCommand = "run-script"

// DefaultTag is the dist-tag npm publishes under when --tag is not given.
const DefaultTag = "latest"

var (
	// ErrMissingVersionContext is returned when the npm context cannot be read.
	ErrMissingVersionContext = errors.New("unable to fetch command context from npm. Make sure you're running pubcop in the prepublishOnly/prepublish npm script")

	// ErrMissingTagValue is returned when --tag is the last publish argument.
	ErrMissingTagValue = errors.New("received --tag option without a value")
)

// argv mirrors the JSON npm (< 7) stores in npm_config_argv.
type argv struct {
	Remain   []string `json:"remain"`
	Cooked   []string `json:"cooked"`
	Original []string `json:"original"`
}

// FromEnv builds the invocation context from npm's environment. getenv is
// usually os.Getenv.
//
// npm 7 and later no longer export npm_config_argv. In that case the command
// is taken from npm_command and the publish tag, if any, from npm_config_tag.
// For "npm run <script>" npm_command is "run-script"; the script name is then
// recovered from npm_lifecycle_event so "npm run publish" still behaves like
// "npm publish".
func FromEnv(getenv func(string) string) (models.InvocationContext, error) {
	version := getenv(EnvPackageVersion)
	if version == "" {
		return models.InvocationContext{}, ErrMissingVersionContext
	}

	rawArgv := getenv(EnvConfigArgv)
	if rawArgv == "" {
		if command := getenv(EnvCommand); command != "" {
			if command == runScriptCommand {
				if event := getenv(EnvLifecycleEvent); event != "" {
					command = scriptName(event)
				}
			}
			return fromCommand(version, command, getenv(EnvConfigTag)), nil
		}
		return models.InvocationContext{}, ErrMissingVersionContext
	}

	var parsed argv
	if err := json.Unmarshal([]byte(rawArgv), &parsed); err != nil {
		return models.InvocationContext{}, fmt.Errorf("%w: %v", ErrMissingVersionContext, err)
	}

	return ParseArgs(version, parsed.Cooked)
}

// ParseArgs splits npm's cooked argument list into command and arguments. A
// leading "run" is dropped so "npm run publish" behaves like "npm publish".
func ParseArgs(version string, cooked []string) (models.InvocationContext, error) {
	if len(cooked) > 0 && cooked[0] == "run" {
		cooked = cooked[1:]
	}
	if len(cooked) == 0 {
		return models.InvocationContext{}, ErrMissingVersionContext
	}

	args := make([]string, len(cooked)-1)
	copy(args, cooked[1:])

	return models.InvocationContext{
		Version: version,
		Command: cooked[0],
		Args:    args,
	}, nil
}

// scriptName strips the pre/post hook prefix from a lifecycle event, so the
// "prepublish" hook of "npm run publish" yields "publish".
func scriptName(event string) string {
	for _, hook := range []string{"pre", "post"} {
		if name, ok := strings.CutPrefix(event, hook); ok && name != "" {
			return name
		}
	}
	return event
}

func fromCommand(version, command, tag string) models.InvocationContext {
	var args []string
	if tag != "" {
		args = []string{"--tag", tag}
	}
	return models.InvocationContext{
		Version: version,
		Command: command,
		Args:    args,
	}
}

// PublishTag returns the dist-tag requested by the publish arguments,
// defaulting to "latest". Both "--tag beta" and "--tag=beta" are accepted.
func PublishTag(args []string) (string, error) {
	for i, arg := range args {
		if value, ok := strings.CutPrefix(arg, "--tag="); ok {
			if value == "" {
				return "", ErrMissingTagValue
			}
			return value, nil
		}

		if arg != "--tag" {
			continue
		}
		if i+1 >= len(args) || args[i+1] == "" {
			return "", ErrMissingTagValue
		}
		return args[i+1], nil
	}

	return DefaultTag, nil
}
