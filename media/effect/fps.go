package effect

type FpsCounter struct {
	mFrameCount   int
	mPreviousTime float64
	mNowFunc      func() float64
	mReportFunc   func(fps int)
}

// NewFpsCounter counts Tick calls and reports the count through
// reportFunc once per elapsed second of nowFunc time.
func NewFpsCounter(nowFunc func() float64, reportFunc func(fps int)) *FpsCounter {

	pThis := new(FpsCounter)
	pThis.mNowFunc = nowFunc
	pThis.mReportFunc = reportFunc
	pThis.mPreviousTime = nowFunc()

	return pThis
}

func (c *FpsCounter) Tick() {

	c.mFrameCount++

	nowTime := c.mNowFunc()
	if nowTime-c.mPreviousTime < 1.0 {
		return
	}

	if c.mReportFunc != nil {
		c.mReportFunc(c.mFrameCount)
	}

	c.mFrameCount = 0
	c.mPreviousTime = nowTime
}
