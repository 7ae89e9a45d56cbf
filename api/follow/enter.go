package follow

type Follow struct{}
