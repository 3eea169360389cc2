package lesson4

const q2Solution = `None of the lags seem especially significant from the correlogram (except possibly lag 5). With linear regression alone, it's unlikely any of these lags would lead to much improvement.

The lag plot, however, indicates that there may be some non-linear dependence, especially in the first lag. In the next lesson, we'll construct a forecaster with a gradient-boosted model, an algorithm capable of learning this kind of dependence.`

const q4Hint = "Submit xLags, xPromo and xOil as X_lags, X_promo and X_oil. Your solution should look like:\n" +
	"```go\n" +
	`xLags, _ := features.MakeLags(yDeseason, ____, "")

promoLags, _ := features.MakeLags(onpromotion, ____, "onpromotion")
promoLeads, _ := features.MakeLeads(onpromotion, ____, "onpromotion")
xPromo, _ := features.Concat(promoLags, onpromotion, promoLeads)

xOil := ____

dates, _ := dataset.Dates(averageSales)
xTime, _ := features.TimeFeatures(dates, yDeseason.Index)
X, _ := features.Concat(xTime, xLags, xPromo, xOil)
` + "```"

const q4Solution = `
xLags, _ := features.MakeLags(yDeseason, 1, "")

promoLags, _ := features.MakeLags(onpromotion, 1, "onpromotion")
promoLeads, _ := features.MakeLeads(onpromotion, 1, "onpromotion")
xPromo, _ := features.Concat(promoLags, onpromotion, promoLeads)

xOil := frame.NewTable(nil)

dates, _ := dataset.Dates(averageSales)
xTime, _ := features.TimeFeatures(dates, yDeseason.Index)
X, _ := features.Concat(xTime, xLags, xPromo, xOil)
`

const q5Hint = "Submit median14, std7 and promo7 as median_14, std_7 and promo_7. Your code should look like:\n" +
	"```go\n" +
	`yLag := features.Shift(sales, 1)
onpromo, _ := features.Column(averageSales, "onpromotion")

mean7 := features.Rolling(yLag, 7).____()
median14 := features.Rolling(yLag, ____).Median()
std7 := features.Rolling(yLag, ____).____()
promo7 := features.Rolling(onpromo, ____, features.Centered()).____()
` + "```"

const q5Solution = `
yLag := features.Shift(sales, 1)
onpromo, _ := features.Column(averageSales, "onpromotion")

mean7 := features.Rolling(yLag, 7).Mean()
median14 := features.Rolling(yLag, 14).Median()
std7 := features.Rolling(yLag, 7).Std()
promo7 := features.Rolling(onpromo, 7, features.Centered()).Sum()
`
