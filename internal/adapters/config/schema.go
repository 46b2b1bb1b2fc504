package config

// Configfile represents the structure of the semverver config.yaml file.
type Configfile struct {
	Registry     RegistryDTO `yaml:"registry"`
	CacheDir     string      `yaml:"cache_dir"`
	Cargo        string      `yaml:"cargo"`
	Driver       string      `yaml:"driver"`
	PublicDriver string      `yaml:"public_driver"`
	HTTPTimeout  string      `yaml:"http_timeout"`
}

// RegistryDTO holds the registry endpoints.
type RegistryDTO struct {
	API      string `yaml:"api"`
	Index    string `yaml:"index"`
	Download string `yaml:"download"`
}
