package config

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

// Profile carries the operator's business identity, prefilled into new
// document drafts and printed on rendered documents.
type Profile struct {
	Business       documentdomain.Party `mapstructure:"business"`
	CurrencySymbol string               `mapstructure:"currencySymbol"`
}

func DefaultProfile() Profile {
	return Profile{
		CurrencySymbol: "R",
	}
}

// ProfileHolder exposes the current profile and hot-reloads it when the
// config file changes on disk.
type ProfileHolder struct {
	current atomic.Value // holds Profile
}

// NewProfileHolder reads billingdesk.yml from the working directory or
// /etc/billingdesk and watches it for changes. A missing file falls back
// to defaults.
func NewProfileHolder() (*ProfileHolder, error) {
	v := viper.New()

	v.SetConfigName("billingdesk")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/billingdesk")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BILLINGDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultProfile()
		v.SetDefault("profile.business", defaults.Business)
		v.SetDefault("profile.currencySymbol", defaults.CurrencySymbol)
	}

	var profile Profile
	if err := v.UnmarshalKey("profile", &profile); err != nil {
		return nil, err
	}
	profile = normalizeProfile(profile)

	holder := &ProfileHolder{}
	holder.current.Store(profile)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Profile
		if err := v.UnmarshalKey("profile", &updated); err != nil {
			log.Printf("[profile] reload failed: %v", err)
			return
		}
		holder.current.Store(normalizeProfile(updated))
		log.Printf("[profile] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticProfileHolder wraps a fixed profile, for embedders and tests
// that do not want file watching.
func NewStaticProfileHolder(p Profile) *ProfileHolder {
	holder := &ProfileHolder{}
	holder.current.Store(normalizeProfile(p))
	return holder
}

func (h *ProfileHolder) Get() Profile {
	return h.current.Load().(Profile)
}

func normalizeProfile(p Profile) Profile {
	if strings.TrimSpace(p.CurrencySymbol) == "" {
		p.CurrencySymbol = DefaultProfile().CurrencySymbol
	}
	return p
}
