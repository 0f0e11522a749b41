package interfaces

type CacheStatus string

const (
	CacheStatusFull CacheStatus = "full"
	CacheStatusMiss CacheStatus = "miss"
)

func (cs CacheStatus) String() string {
	return string(cs)
}

// CacheStatusFromHit maps a cache lookup outcome to a CacheStatus
func CacheStatusFromHit(hit bool) CacheStatus {
	if hit {
		return CacheStatusFull
	}
	return CacheStatusMiss
}
