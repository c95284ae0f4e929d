// Package config holds the persisted user preferences of nodepat.
//
// Preferences are read from layered sources, each overriding the one below:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← NODEPAT_*, highest priority
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← <config dir>/nodepat/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← lowest priority
//	└─────────────────────────────┘
//
// When the settings file does not exist yet, the JSON file of earlier
// versions (<config dir>/Nodepat/config.jsonc) is imported in its place and
// migrated to the current layout.
//
// # Basic Usage
//
//	store := config.NewStore(vfs.NewOSFS(), config.DefaultPath())
//	cfg, err := store.Load()
//	if err != nil {
//		// cfg holds defaults; err says why the file was ignored
//	}
//
//	cfg.AddRecentFile("/home/me/notes.txt")
//	err = store.Save(cfg)
package config
