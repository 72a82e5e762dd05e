package redis

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	ResultsStream string // empty disables publishing results
	Group         string
	ConsumerName  string
}

func NewRedisStreamConfig(redisAddr, redisPassword, stream, resultsStream, group, consumerName string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        stream,
		ResultsStream: resultsStream,
		Group:         group,
		ConsumerName:  consumerName,
	}
}
