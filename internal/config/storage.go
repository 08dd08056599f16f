package config

import (
	"fmt"

	"github.com/JaimeStill/graph-vis/pkg/storage"
)

var (
	svgEnv = &storage.Env{BasePath: "STORAGE_SVG_PATH", MaxFileSize: "STORAGE_MAX_FILE_SIZE"}
	pdbEnv = &storage.Env{BasePath: "STORAGE_PDB_PATH", MaxFileSize: "STORAGE_MAX_FILE_SIZE"}
	gbkEnv = &storage.Env{BasePath: "STORAGE_GBK_PATH", MaxFileSize: "STORAGE_MAX_FILE_SIZE"}
)

// StorageConfig roots each artifact kind in its own directory.
type StorageConfig struct {
	SVG storage.Config `toml:"svg"`
	PDB storage.Config `toml:"pdb"`
	GBK storage.Config `toml:"gbk"`
}

func (c *StorageConfig) Finalize() error {
	c.loadDefaults()

	if err := c.SVG.Finalize(svgEnv); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	if err := c.PDB.Finalize(pdbEnv); err != nil {
		return fmt.Errorf("pdb: %w", err)
	}
	if err := c.GBK.Finalize(gbkEnv); err != nil {
		return fmt.Errorf("gbk: %w", err)
	}
	return nil
}

func (c *StorageConfig) Merge(overlay *StorageConfig) {
	c.SVG.Merge(&overlay.SVG)
	c.PDB.Merge(&overlay.PDB)
	c.GBK.Merge(&overlay.GBK)
}

func (c *StorageConfig) loadDefaults() {
	if c.SVG.BasePath == "" {
		c.SVG.BasePath = ".data/svg"
	}
	if c.PDB.BasePath == "" {
		c.PDB.BasePath = ".data/pdb"
	}
	if c.GBK.BasePath == "" {
		c.GBK.BasePath = ".data/gbk"
	}
}
