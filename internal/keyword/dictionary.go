package keyword

// entry maps a Korean source phrase to one or more English search terms.
// The English side is space-separated; each word counts as one term.
type entry struct {
	ko string
	en string
}

// dictionary is the static Korean to English keyword table. Order matters:
// the substring fallback scan walks this slice top to bottom and the first
// matching entry wins, so more specific phrases must come before shorter
// ones that could shadow them.
var dictionary = []entry{
	// Food and drink
	{"아이스크림", "ice cream"},
	{"레스토랑", "restaurant"},
	{"베이커리", "bakery"},
	{"샌드위치", "sandwich"},
	{"디저트", "dessert"},
	{"샐러드", "salad"},
	{"파스타", "pasta"},
	{"스테이크", "steak"},
	{"치킨", "fried chicken"},
	{"버거", "burger"},
	{"피자", "pizza"},
	{"초밥", "sushi"},
	{"라면", "ramen noodles"},
	{"커피", "coffee"},
	{"케이크", "cake"},
	{"맥주", "beer"},
	{"와인", "wine"},
	{"음료", "beverage"},
	{"과일", "fruit"},
	{"채소", "vegetables"},
	{"비건", "vegan"},
	{"맛있", "delicious"},
	{"신선", "fresh"},
	{"수제", "handmade"},
	{"유기농", "organic"},
	{"식당", "restaurant"},
	{"카페", "cafe"},
	{"빵", "bread"},

	// Shopping and promotions
	{"신상품", "new product"},
	{"신메뉴", "new menu"},
	{"할인", "sale discount"},
	{"세일", "sale"},
	{"특가", "special offer"},
	{"반값", "half price"},
	{"무료", "free"},
	{"쿠폰", "coupon"},
	{"증정", "giveaway"},
	{"이벤트", "event promotion"},
	{"배송", "delivery"},
	{"오픈", "grand opening"},
	{"한정", "limited edition"},
	{"쇼핑", "shopping"},
	{"매장", "store"},
	{"마트", "grocery market"},

	// Tech
	{"스마트폰", "smartphone"},
	{"노트북", "laptop"},
	{"컴퓨터", "computer"},
	{"인공지능", "artificial intelligence"},
	{"게임", "gaming"},
	{"전자", "electronics"},
	{"앱", "mobile app"},

	// Business
	{"비즈니스", "business"},
	{"마케팅", "marketing"},
	{"창업", "startup"},
	{"광고", "advertising"},
	{"투자", "investment"},
	{"회사", "office"},
	{"성공", "success"},

	// Health and beauty
	{"다이어트", "diet fitness"},
	{"화장품", "cosmetics"},
	{"운동", "workout"},
	{"요가", "yoga"},
	{"건강", "health wellness"},
	{"뷰티", "beauty"},
	{"피부", "skincare"},
	{"헬스", "gym fitness"},

	// Travel
	{"여행", "travel"},
	{"호텔", "hotel"},
	{"항공", "airplane flight"},
	{"캠핑", "camping"},
	{"휴가", "vacation"},
	{"바다", "ocean beach"},

	// Descriptive
	{"프리미엄", "premium luxury"},
	{"럭셔리", "luxury"},
	{"새로운", "new"},
	{"특별", "special"},
	{"최고", "best premium"},
	{"인기", "popular"},
	{"달콤", "sweet"},
	{"매운", "spicy"},
	{"따뜻", "warm cozy"},
	{"시원", "cool refreshing"},
	{"모던", "modern"},
	{"빠른", "fast"},
}

// exactIndex supports O(1) whole-token lookups into the dictionary.
var exactIndex = func() map[string]string {
	m := make(map[string]string, len(dictionary))
	for _, e := range dictionary {
		if _, ok := m[e.ko]; !ok {
			m[e.ko] = e.en
		}
	}
	return m
}()
