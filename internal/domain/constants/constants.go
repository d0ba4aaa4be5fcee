// Package constants holds provider identifiers shared between config and infra.
package constants

const (
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
	// PubSubProviderLog selects the log-only publisher for development.
	PubSubProviderLog = "log"

	// UploadProviderCloudinary selects the Cloudinary unsigned upload endpoint.
	UploadProviderCloudinary = "cloudinary"
	// UploadProviderBucket selects a gocloud.dev blob bucket.
	UploadProviderBucket = "bucket"
)
