package meta

import (
	"fmt"
	"strings"

	"github.com/keshon/gitlet/internal/config"
)

const refPrefix = "ref: "

type HeadRef string

func (h HeadRef) String() string { return string(h) }

// Branch returns the branch name the ref points at.
func (h HeadRef) Branch() string {
	return strings.TrimPrefix(string(h), config.BranchesDir+"/")
}

// RefForBranch builds the ref stored in HEAD for a branch.
func RefForBranch(name string) HeadRef {
	return HeadRef(config.BranchesDir + "/" + name)
}

// ParseHeadRef parses the content of a HEAD file.
func ParseHeadRef(data []byte) (HeadRef, error) {
	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, refPrefix) {
		return "", fmt.Errorf("invalid HEAD content: %q", s)
	}
	ref := HeadRef(strings.TrimPrefix(s, refPrefix))
	if !strings.HasPrefix(ref.String(), config.BranchesDir+"/") || ValidateBranchName(ref.Branch()) != nil {
		return "", fmt.Errorf("invalid HEAD ref: %q", ref)
	}
	return ref, nil
}

func (mc *MetaContext) readHeadRef() (HeadRef, error) {
	data, err := mc.FS.ReadFile(mc.Config.HeadFile())
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD %q: %w", mc.Config.HeadFile(), err)
	}
	return ParseHeadRef(data)
}

func (mc *MetaContext) writeHeadRef(ref HeadRef) error {
	content := refPrefix + ref.String()
	if err := mc.FS.WriteFile(mc.Config.HeadFile(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write HEAD %q: %w", mc.Config.HeadFile(), err)
	}
	return nil
}
