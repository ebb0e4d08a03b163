package core

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "QUILL"

type Config struct {
	SourceDirectory  string
	ContentDirectory string // relative to SourceDirectory
	PublicDirectory  string
	Site             SiteConfig
}

// SiteConfig holds the site identity used in feed metadata. Empty fields are
// filled from the feed defaults.
type SiteConfig struct {
	Title       string
	Description string
	BaseURL     string
	Author      Author
}

type Author struct {
	Name  string
	Email string
}

// ParseConfig parses the configuration from the given file, or from a file
// named "quill" in the working directory when filename is empty. Environment
// variables prefixed with QUILL_ override the file, and a .env file in the
// working directory is loaded first if present.
func ParseConfig(filename string) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: could not load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("sourceDirectory", ".")
	v.SetDefault("contentDirectory", filepath.Join("content", "posts"))
	v.SetDefault("publicDirectory", "public")
	v.SetDefault("site.title", "")
	v.SetDefault("site.description", "")
	v.SetDefault("site.baseURL", "")
	v.SetDefault("site.author.name", "")
	v.SetDefault("site.author.email", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
	} else {
		v.SetConfigName("quill")
		v.AddConfigPath(".")
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if filename != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	conf := &Config{}
	err = v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	err = conf.validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) validate() error {
	var err error

	c.SourceDirectory, err = filepath.Abs(c.SourceDirectory)
	if err != nil {
		return err
	}

	if c.ContentDirectory == "" {
		return errors.New("config: ContentDirectory is empty")
	}

	c.PublicDirectory, err = filepath.Abs(c.PublicDirectory)
	if err != nil {
		return err
	}

	c.Site.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.Site.BaseURL), "/")

	err = validation.ValidateStruct(&c.Site,
		validation.Field(&c.Site.Title, validation.Length(0, 200)),
		validation.Field(&c.Site.BaseURL, is.URL),
		validation.Field(&c.Site.Author),
	)
	if err != nil {
		return fmt.Errorf("config: Site: %w", err)
	}

	return nil
}

// ContentPath is the absolute path of the posts directory.
func (c *Config) ContentPath() string {
	if filepath.IsAbs(c.ContentDirectory) {
		return c.ContentDirectory
	}

	return filepath.Join(c.SourceDirectory, c.ContentDirectory)
}

func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Email, is.EmailFormat),
	)
}
