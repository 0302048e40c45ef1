package search

import "github.com/kailas-cloud/harfsearch/internal/arabic"

func arabicDefaults() arabic.Generator {
	return arabic.NewGenerator(arabic.DefaultLimits)
}
