// Package constants provides shared constants used throughout the bigmonctl
// codebase. This includes controller endpoint defaults, timeouts, file
// permissions, and other configuration values that should be consistent
// across the application.
package constants

import "time"

// Controller endpoint constants define how the Big Monitoring Fabric
// controller's REST API is reached
const (
	// DefaultControllerPort is the TCP port the controller's REST API listens on
	DefaultControllerPort = 8443

	// DefaultControllerScheme is the URL scheme for controller connections
	DefaultControllerScheme = "https"

	// BigtapBasePath is the path prefix of the bigtap application's REST collection
	BigtapBasePath = "/api/v1/data/controller/applications/bigtap"

	// SessionCookieName is the cookie key carrying the controller access token
	SessionCookieName = "session_cookie"

	// AccessTokenEnvVar is the environment variable consulted when no access
	// token is supplied explicitly
	AccessTokenEnvVar = "BIGSWITCH_ACCESS_TOKEN"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the controller
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute

	// ShutdownTimeout is the grace period for cleanup on interrupt
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like access tokens (rw-------)
	SecureFilePermissions = 0600
)

// Policy defaults mirror the controller's own defaults for unspecified fields
const (
	// DefaultPolicyAction is the action applied when none is specified
	DefaultPolicyAction = "forward"

	// DefaultPolicyPriority is the priority applied when none is specified
	DefaultPolicyPriority = 100

	// DefaultPolicyDuration means the policy runs unbounded
	DefaultPolicyDuration = 0

	// DefaultDeliveryPacketCount means no packet-count bound
	DefaultDeliveryPacketCount = 0
)

// Logging constants
const (
	// LogRotationSize is the maximum size of a log file before rotation in megabytes
	LogRotationSize = 10

	// LogRotationAgeDays is the maximum age of rotated log files in days
	LogRotationAgeDays = 7

	// LogRotationBackups is the maximum number of old log files to retain
	LogRotationBackups = 5
)

// Network constants
const (
	// DialTimeout is the timeout for establishing network connections
	DialTimeout = 10 * time.Second

	// KeepAliveInterval is the interval between keep-alive probes
	KeepAliveInterval = 30 * time.Second

	// MaxIdleConnections is the maximum number of idle connections in the pool
	MaxIdleConnections = 10
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format used for policy start times
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatLog is the format used in log files
	TimeFormatLog = "2006-01-02 15:04:05.000"
)
