package controllers

import (
	"time"
)

// timeNow 可替换的时钟，测试中覆盖
var timeNow = time.Now
