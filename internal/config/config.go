package config

import (
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/hash"
	"gopkg.in/yaml.v3"
)

const (
	RepoDir     = ".gitlet"
	ObjectsDir  = "objects"
	BlobsDir    = "blobs"
	CommitsDir  = "commits"
	BranchesDir = "branches"
	HeadFile    = "HEAD"
	IndexFile   = "index.json"
	ConfigFile  = "config.yaml"

	IgnoredFilesFile = ".gitletignore"
)

const (
	DefaultBranch = "master"
	DefaultHash   = hash.XXH3

	// LogLevelEnv overrides the log_level setting when set.
	LogLevelEnv = "GITLET_LOG"
)

const (
	// FormatVersion is written into new repositories.
	FormatVersion = "1.0.0"
	// SupportedFormats is the range of on-disk formats this build can open.
	SupportedFormats = "^1.0.0"
)

var DefaultIgnoredFiles = []string{RepoDir}

// Settings is the per-repository configuration stored in config.yaml.
type Settings struct {
	Hash          string `yaml:"hash"`
	DefaultBranch string `yaml:"default_branch"`
	FormatVersion string `yaml:"format_version"`
	CompressBlobs bool   `yaml:"compress_blobs"`
	LogLevel      string `yaml:"log_level,omitempty"`
}

// DefaultSettings returns the settings used by a fresh repository.
func DefaultSettings() Settings {
	return Settings{
		Hash:          DefaultHash,
		DefaultBranch: DefaultBranch,
		FormatVersion: FormatVersion,
		CompressBlobs: true,
	}
}

// RepoConfig derives every repository path from the working tree root.
type RepoConfig struct {
	WorkingTreeDir string
	RepoDir        string
	Settings       Settings
}

// NewRepoConfig builds a config rooted at workingTree with default settings.
func NewRepoConfig(workingTree string) *RepoConfig {
	if workingTree == "" {
		workingTree = "."
	}
	return &RepoConfig{
		WorkingTreeDir: workingTree,
		RepoDir:        filepath.Join(workingTree, RepoDir),
		Settings:       DefaultSettings(),
	}
}

func (c *RepoConfig) ObjectsDir() string  { return filepath.Join(c.RepoDir, ObjectsDir) }
func (c *RepoConfig) BlobsDir() string    { return filepath.Join(c.ObjectsDir(), BlobsDir) }
func (c *RepoConfig) CommitsDir() string  { return filepath.Join(c.ObjectsDir(), CommitsDir) }
func (c *RepoConfig) BranchesDir() string { return filepath.Join(c.RepoDir, BranchesDir) }
func (c *RepoConfig) HeadFile() string    { return filepath.Join(c.RepoDir, HeadFile) }
func (c *RepoConfig) IndexFile() string   { return filepath.Join(c.RepoDir, IndexFile) }
func (c *RepoConfig) ConfigFile() string  { return filepath.Join(c.RepoDir, ConfigFile) }
func (c *RepoConfig) IgnoreFile() string {
	return filepath.Join(c.WorkingTreeDir, IgnoredFilesFile)
}

// Dirs lists the directories a repository needs, parents first.
func (c *RepoConfig) Dirs() []string {
	return []string{
		c.RepoDir,
		c.ObjectsDir(),
		c.BlobsDir(),
		c.CommitsDir(),
		c.BranchesDir(),
	}
}

// Load reads config.yaml into c.Settings. Missing keys keep their defaults.
func (c *RepoConfig) Load(fsys fs.FS) error {
	data, err := fsys.ReadFile(c.ConfigFile())
	if err != nil {
		return fmt.Errorf("read config %q: %w", c.ConfigFile(), err)
	}
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parse config %q: %w", c.ConfigFile(), err)
	}
	c.Settings = settings
	return c.Validate()
}

// Save writes c.Settings to config.yaml.
func (c *RepoConfig) Save(fsys fs.FS) error {
	data, err := yaml.Marshal(&c.Settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fsys.WriteFile(c.ConfigFile(), data, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", c.ConfigFile(), err)
	}
	return nil
}

// Validate checks the hash algorithm and that the format version is one this build understands.
func (c *RepoConfig) Validate() error {
	if !hash.Supported(c.Settings.Hash) {
		return fmt.Errorf("unsupported hash algorithm %q", c.Settings.Hash)
	}
	v, err := semver.NewVersion(c.Settings.FormatVersion)
	if err != nil {
		return fmt.Errorf("invalid format version %q: %w", c.Settings.FormatVersion, err)
	}
	constraint, err := semver.NewConstraint(SupportedFormats)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("repository format %s is not supported (want %s)", v, SupportedFormats)
	}
	return nil
}
