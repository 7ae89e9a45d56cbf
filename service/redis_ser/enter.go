package redis_ser

const (
	Prefix = "fkemo:"
)

func GetRedisKey(key string) string {
	return Prefix + key
}
