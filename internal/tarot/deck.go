package tarot

// Deck returns a copy of the static deck so callers cannot mutate the
// reference data.
func Deck() []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	return out
}

// DeckSize is the number of cards in the static deck.
func DeckSize() int {
	return len(deck)
}

var deck = []Card{
	{
		ID: "major_00", Name: "愚者", NameEn: "The Fool", Type: Major,
		ImageURL:    "/static/tarot/major_00.png",
		Description: "愚者代表新的开始、冒险精神和无限的可能性。",
		Keywords:    []string{"新开始", "冒险", "自由", "纯真"},
		Analysis:    "你正站在一段新旅程的起点，不必为未知而担忧，带着好奇心出发吧。",
		Affirmation: "我拥抱未知，勇敢迈出第一步。",
	},
	{
		ID: "major_01", Name: "魔术师", NameEn: "The Magician", Type: Major,
		ImageURL:    "/static/tarot/major_01.png",
		Description: "魔术师象征意志力、创造力和把想法变为现实的能力。",
		Keywords:    []string{"创造", "意志", "行动", "专注"},
		Analysis:    "你手中已经握有实现目标所需的全部工具，现在需要的是专注与行动。",
		Affirmation: "我有能力把想法变成现实。",
	},
	{
		ID: "major_02", Name: "女祭司", NameEn: "The High Priestess", Type: Major,
		ImageURL:    "/static/tarot/major_02.png",
		Description: "女祭司代表直觉、内在智慧和潜意识的声音。",
		Keywords:    []string{"直觉", "智慧", "静心", "神秘"},
		Analysis:    "答案不在外界的喧嚣里，安静下来倾听自己内心的声音。",
		Affirmation: "我信任自己的直觉。",
	},
	{
		ID: "major_03", Name: "女皇", NameEn: "The Empress", Type: Major,
		ImageURL:    "/static/tarot/major_03.png",
		Description: "女皇象征丰饶、滋养和温柔的关怀。",
		Keywords:    []string{"丰盛", "滋养", "关怀", "成长"},
		Analysis:    "好好照顾自己，也允许别人照顾你，成长需要温柔的土壤。",
		Affirmation: "我值得被温柔以待。",
	},
	{
		ID: "major_04", Name: "皇帝", NameEn: "The Emperor", Type: Major,
		ImageURL:    "/static/tarot/major_04.png",
		Description: "皇帝代表秩序、责任与稳固的根基。",
		Keywords:    []string{"秩序", "责任", "稳定", "掌控"},
		Analysis:    "为生活建立一点结构和规律，混乱的感觉会随之散去。",
		Affirmation: "我为自己的生活掌舵。",
	},
	{
		ID: "major_05", Name: "教皇", NameEn: "The Hierophant", Type: Major,
		ImageURL:    "/static/tarot/major_05.png",
		Description: "教皇象征传统、指引和值得信赖的建议。",
		Keywords:    []string{"指引", "传统", "学习", "信任"},
		Analysis:    "向值得信任的人请教并不是软弱，前人的经验可以为你引路。",
		Affirmation: "我愿意学习，也愿意求助。",
	},
	{
		ID: "major_06", Name: "恋人", NameEn: "The Lovers", Type: Major,
		ImageURL:    "/static/tarot/major_06.png",
		Description: "恋人代表联结、和谐与重要的选择。",
		Keywords:    []string{"爱", "选择", "和谐", "联结"},
		Analysis:    "面前的选择关乎你真正珍视的东西，跟随内心而不是惯性。",
		Affirmation: "我忠于自己真正珍视的事物。",
	},
	{
		ID: "major_07", Name: "战车", NameEn: "The Chariot", Type: Major,
		ImageURL:    "/static/tarot/major_07.png",
		Description: "战车象征意志、胜利和克服阻力的前进。",
		Keywords:    []string{"前进", "意志", "胜利", "坚持"},
		Analysis:    "把散乱的精力收拢到一个方向上，你比想象中更接近目标。",
		Affirmation: "我专注前行，终会抵达。",
	},
	{
		ID: "major_08", Name: "力量", NameEn: "Strength", Type: Major,
		ImageURL:    "/static/tarot/major_08.png",
		Description: "力量代表温柔的勇气、耐心和内在的坚韧。",
		Keywords:    []string{"勇气", "耐心", "温柔", "坚韧"},
		Analysis:    "真正的力量不是压制，而是温柔地与自己的情绪共处。",
		Affirmation: "我温柔而有力量。",
	},
	{
		ID: "major_09", Name: "隐士", NameEn: "The Hermit", Type: Major,
		ImageURL:    "/static/tarot/major_09.png",
		Description: "隐士象征独处、反思和向内寻找答案。",
		Keywords:    []string{"独处", "反思", "智慧", "沉淀"},
		Analysis:    "给自己留一段安静的独处时光，答案会在沉淀中浮现。",
		Affirmation: "独处让我更了解自己。",
	},
	{
		ID: "major_10", Name: "命运之轮", NameEn: "Wheel of Fortune", Type: Major,
		ImageURL:    "/static/tarot/major_10.png",
		Description: "命运之轮代表转机、循环和生命的起伏。",
		Keywords:    []string{"转机", "变化", "机遇", "循环"},
		Analysis:    "眼下的局面正在转动，顺势而为，变化会带来新的机会。",
		Affirmation: "我相信变化会带来好运。",
	},
	{
		ID: "major_11", Name: "正义", NameEn: "Justice", Type: Major,
		ImageURL:    "/static/tarot/major_11.png",
		Description: "正义象征公平、诚实和对后果的承担。",
		Keywords:    []string{"公平", "诚实", "平衡", "抉择"},
		Analysis:    "诚实地面对现状并做出公允的决定，内心的天平会恢复平衡。",
		Affirmation: "我诚实地面对自己和他人。",
	},
	{
		ID: "major_12", Name: "倒吊人", NameEn: "The Hanged Man", Type: Major,
		ImageURL:    "/static/tarot/major_12.png",
		Description: "倒吊人代表换个角度、暂停和必要的等待。",
		Keywords:    []string{"换位", "暂停", "等待", "释怀"},
		Analysis:    "卡住的时候不妨停一停，换个角度看问题，僵局或许另有出口。",
		Affirmation: "我允许自己暂停和等待。",
	},
	{
		ID: "major_13", Name: "死神", NameEn: "Death", Type: Major,
		ImageURL:    "/static/tarot/major_13.png",
		Description: "死神象征结束、放手和随之而来的重生。",
		Keywords:    []string{"结束", "放手", "转化", "重生"},
		Analysis:    "某些事情确实走到了尽头，告别它，才能腾出手迎接新的开始。",
		Affirmation: "我放下过去，迎接新生。",
	},
	{
		ID: "major_14", Name: "节制", NameEn: "Temperance", Type: Major,
		ImageURL:    "/static/tarot/major_14.png",
		Description: "节制代表平衡、调和与恰到好处的分寸。",
		Keywords:    []string{"平衡", "调和", "耐心", "节奏"},
		Analysis:    "不急不躁，找到属于自己的节奏，生活的各个部分会慢慢调和。",
		Affirmation: "我以自己的节奏稳稳前进。",
	},
	{
		ID: "major_15", Name: "恶魔", NameEn: "The Devil", Type: Major,
		ImageURL:    "/static/tarot/major_15.png",
		Description: "恶魔象征束缚、执念和需要正视的诱惑。",
		Keywords:    []string{"束缚", "执念", "诱惑", "觉察"},
		Analysis:    "觉察那些让你不自由的习惯和执念，锁链其实握在你自己手里。",
		Affirmation: "我有力量挣脱束缚。",
	},
	{
		ID: "major_16", Name: "高塔", NameEn: "The Tower", Type: Major,
		ImageURL:    "/static/tarot/major_16.png",
		Description: "高塔代表突变、打破和旧结构的崩塌。",
		Keywords:    []string{"突变", "打破", "真相", "重建"},
		Analysis:    "意外的动荡虽然难受，却也拆掉了本就不稳的地基，重建由此开始。",
		Affirmation: "崩塌之后，我重建更稳固的自己。",
	},
	{
		ID: "major_17", Name: "星星", NameEn: "The Star", Type: Major,
		ImageURL:    "/static/tarot/major_17.png",
		Description: "星星象征希望、疗愈和对未来的信心。",
		Keywords:    []string{"希望", "疗愈", "信心", "宁静"},
		Analysis:    "最难的部分已经过去，保持希望，你正在慢慢痊愈。",
		Affirmation: "我对未来充满希望。",
	},
	{
		ID: "major_18", Name: "月亮", NameEn: "The Moon", Type: Major,
		ImageURL:    "/static/tarot/major_18.png",
		Description: "月亮代表不安、想象和朦胧不清的情绪。",
		Keywords:    []string{"不安", "想象", "情绪", "直面"},
		Analysis:    "夜里的影子往往被放大，别让想象吓住自己，天亮后再看一看。",
		Affirmation: "我不被恐惧牵着走。",
	},
	{
		ID: "major_19", Name: "太阳", NameEn: "The Sun", Type: Major,
		ImageURL:    "/static/tarot/major_19.png",
		Description: "太阳象征喜悦、活力和坦荡的成功。",
		Keywords:    []string{"喜悦", "活力", "成功", "自信"},
		Analysis:    "尽情享受眼下的明亮时刻，你值得这份快乐和肯定。",
		Affirmation: "我值得所有的美好。",
	},
	{
		ID: "major_20", Name: "审判", NameEn: "Judgement", Type: Major,
		ImageURL:    "/static/tarot/major_20.png",
		Description: "审判代表觉醒、复盘和对自己的重新认识。",
		Keywords:    []string{"觉醒", "复盘", "宽恕", "新生"},
		Analysis:    "回顾来路不是为了自责，而是为了带着经验轻装上阵。",
		Affirmation: "我与过去和解，重新出发。",
	},
	{
		ID: "major_21", Name: "世界", NameEn: "The World", Type: Major,
		ImageURL:    "/static/tarot/major_21.png",
		Description: "世界象征圆满、完成和一个周期的落幕。",
		Keywords:    []string{"圆满", "完成", "成就", "整合"},
		Analysis:    "一个阶段正在圆满收尾，为自己的坚持庆祝，然后开启下一段旅程。",
		Affirmation: "我完整而圆满。",
	},
	{
		ID: "wands_01", Name: "权杖一", NameEn: "Ace of Wands", Type: Wands,
		ImageURL:    "/static/tarot/wands_01.png",
		Description: "权杖一代表灵感迸发和行动的火种。",
		Keywords:    []string{"灵感", "热情", "开始", "动力"},
		Analysis:    "心里冒出的那个念头值得认真对待，趁热情还在就动起来。",
		Affirmation: "我点燃属于自己的火焰。",
	},
	{
		ID: "cups_01", Name: "圣杯一", NameEn: "Ace of Cups", Type: Cups,
		ImageURL:    "/static/tarot/cups_01.png",
		Description: "圣杯一象征情感的涌现和心灵的满溢。",
		Keywords:    []string{"情感", "真心", "接纳", "流动"},
		Analysis:    "允许情绪自然流动，无论是喜悦还是眼泪，都是真实的你。",
		Affirmation: "我接纳自己所有的情绪。",
	},
	{
		ID: "swords_01", Name: "宝剑一", NameEn: "Ace of Swords", Type: Swords,
		ImageURL:    "/static/tarot/swords_01.png",
		Description: "宝剑一代表清晰的思路和一针见血的洞察。",
		Keywords:    []string{"清晰", "洞察", "决断", "真相"},
		Analysis:    "拨开情绪的迷雾，问题的核心其实很清楚，果断做出判断。",
		Affirmation: "我看得清，也想得明白。",
	},
	{
		ID: "pentacles_01", Name: "星币一", NameEn: "Ace of Pentacles", Type: Pentacles,
		ImageURL:    "/static/tarot/pentacles_01.png",
		Description: "星币一象征踏实的机会和可以落地的回报。",
		Keywords:    []string{"机会", "踏实", "积累", "收获"},
		Analysis:    "眼前有一个值得耕耘的机会，一步一步来，积累终会开花结果。",
		Affirmation: "我脚踏实地，静待收获。",
	},
}
