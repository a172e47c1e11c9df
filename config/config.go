package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS        = ""        // e.g. "example.com,example2.com"
	MYSQL_DSN          = ""        // MySQL will be used if this is set
	SQLITE_FILE        = "blog.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	SESSION_KEY        = "change me in production"
	UPLOADS_DIR        = "" // Local directory for post images; creates a disk bucket on first run
	DEBUG_MODE         = true
	POSTS_PER_PAGE     = 10 // Posts per feed page
	HOME_CACHE_SECONDS = 20 // How long the rendered home feed stays cached
	// S3 bucket for post images. If S3_BUCKET is set, it takes precedence over UPLOADS_DIR
	S3_BUCKET   = ""
	S3_REGION   = ""
	S3_ENDPOINT = "" // Optional, for S3-compatible storage
	S3_AUTH     = "" // "key:secret"
	S3_PREFIX   = ""
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("UPLOADS_DIR", &UPLOADS_DIR)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("HOME_CACHE_SECONDS", &HOME_CACHE_SECONDS)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_AUTH", &S3_AUTH)
	readEnvString("S3_PREFIX", &S3_PREFIX)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
