package ranking

import (
	"math"
	"time"
)

type RankConfig struct {
	Gravity       float64 // 时间重力
	WeightLike    float64
	WeightUnlike  float64
	WeightComment float64
	WeightView    float64 // 浏览量权重要给得极小, 数量级太大
	ScaleFactor   float64 // 放大系数, 让分数落在 0-100 区间
}

var DefaultConfig = RankConfig{
	Gravity:       1.5,
	WeightLike:    1.0,
	WeightUnlike:  1.5,
	WeightComment: 2.0,
	WeightView:    0.01,
	ScaleFactor:   100.0,
}

// Score 计算创意的热度分
// 加权互动值取对数平滑后按发布时长衰减
func Score(createdAt time.Time, likes, unlikes, comments, views int64) float64 {
	hours := time.Since(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}

	weightedSum := float64(likes)*DefaultConfig.WeightLike +
		float64(comments)*DefaultConfig.WeightComment +
		float64(views)*DefaultConfig.WeightView -
		float64(unlikes)*DefaultConfig.WeightUnlike

	if weightedSum < 0 {
		weightedSum = 0 // 防止负数无法取对数
	}

	logScore := math.Log10(weightedSum + 1)
	numerator := logScore * DefaultConfig.ScaleFactor
	decay := math.Pow(hours+2, DefaultConfig.Gravity)

	return numerator / decay
}
