package cache

import (
	"log"
	"os"
)

// MakeCache picks the blob store when Azure credentials are in the
// environment, otherwise a local file cache.
func MakeCache() (ListCache, error) {
	if _, ok := os.LookupEnv("AZURE_STORAGE_ACCOUNT_NAME"); ok {
		log.Println("Using Azure Blob Storage for cache")
		return NewBlobCache("recipes")
	}
	return NewFileCache("cache"), nil
}
