package static

import "time"

// Retry Constants
const (
	MAX_ATTEMPTS = 5
	RETRY_DELAY  = 1 * time.Minute
)

// Settings Key Constants
const (
	SETTING_MIRROR_URL = "mirror-url"
	SETTING_USERNAME   = "username"
	SETTING_PASSWORD   = "password"
)

// Refspec Constants
const (
	REFSPEC_HEADS = "+refs/heads/*:refs/heads/*"
	REFSPEC_TAGS  = "+refs/tags/*:refs/tags/*"
)

// Default Constants
const (
	DEFAULT_LOG_LEVEL    = "info"
	DEFAULT_LISTEN       = ":8090"
	DEFAULT_WORKERS      = 4
	DEFAULT_PUSH_TIMEOUT = 10 * time.Minute
	DEFAULT_CONFIG_NAME  = "mirror"
	DEFAULT_REPO_SUFFIX  = ".git"
	DEFAULT_ETCD_PREFIX  = "/mirror"
	DEFAULT_GIT_COMMAND  = "git"
	DEFAULT_KEY_FILE     = "mirror.key"
)

// Store Backend Constants
const (
	STORE_MEMORY = "memory"
	STORE_FILE   = "file"
	STORE_ETCD   = "etcd"
)

// Executor Constants
const (
	EXECUTOR_GIT     = "git"
	EXECUTOR_COMMAND = "command"
)

// Response Constants
const (
	RESPONSE_SCHEDULED      = "mirror push accepted and scheduled"
	RESPONSE_SAVED          = "mirror settings are saved"
	RESPONSE_INVALID        = "mirror settings are invalid"
	RESPONSE_BAD_REQUEST    = "request sent is invalid"
	RESPONSE_NOT_FOUND      = "repository is not found"
	RESPONSE_INTERNAL_ERROR = "request errored on the server"
	RESPONSE_HEALTHY        = "mirror service is healthy"
)

// Mask shown instead of a stored secret
const REDACTED = "xxxxx"
