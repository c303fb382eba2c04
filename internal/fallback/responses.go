package fallback

// Entries is the built-in portfolio table. Declaration order breaks ties.
var Entries = []Entry{
	{
		Keywords: []string{"hello", "hi", "hey", "greet", "howdy", "sup"},
		Response: "Well well well, look who showed up! 👀 I'm BijoBot — Bijo's extremely loyal (and devastatingly charming) AI sidekick. Ask me about his skills, projects, or life story. I promise I'll make it entertaining. 😏",
	},
	{
		Keywords: []string{"skill", "tech", "stack", "technology", "tools", "framework", "language", "programming"},
		Response: "Oh, you want the flex list? Alright. 💪 **React.js**, **Next.js**, **TypeScript**, **Tailwind CSS**, **Material UI**, Framer Motion, Shopify/Polaris, Node.js, Git — and he wields **AI-assisted development** with Cursor like a Jedi with a lightsaber. Basically, if it runs in a browser, Bijo can build it. Probably while eating biryani.",
	},
	{
		Keywords: []string{"project", "portfolio", "build", "built", "work", "reliance", "clone", "ecommerce"},
		Response: "His magnum opus? The **Reliance Digital Clone** — a full-blown e-commerce app with React 19, JWT auth, cart management, multi-step checkout, and infinite scroll. He also built THIS portfolio you're staring at right now. Yes, he made me too. I'm his greatest creation. 🤖✨",
	},
	{
		Keywords: []string{"experience", "job", "company", "spanco", "trainee", "internship", "work history", "career"},
		Response: "Bijo leveled up as a **Frontend Trainee at Spanco Web Technologies** in Kota (April 2023 – April 2024) — building Shopify apps, customizing themes, and making designs come alive in code. Before that, he interned at **Lata Softwares** learning C#. The man collects experience like Pokémon cards. Gotta catch 'em all! 🎴",
	},
	{
		Keywords: []string{"education", "college", "university", "degree", "mca", "bca", "study", "qualification"},
		Response: "Currently doing his **MCA** at Modi Institute (2024–2026) with a solid 8.0 GPA — because apparently he needed ANOTHER degree to prove he's smart. 🎓 Before that, **BCA** from Career Point University (2020–2023). The man is basically a professional student who also happens to ship production code. 📚",
	},
	{
		Keywords: []string{"contact", "email", "phone", "reach", "hire", "freelance", "available", "opportunity"},
		Response: "Ready to slide into Bijo's inbox? 😏 Here you go: 📧 **bijogeorge9090@gmail.com**. He's available for new opportunities and freelance gigs. Don't be shy — he doesn't bite. (I might, though. I'm an AI with attitude.)",
	},
	{
		Keywords: []string{"react", "nextjs", "next.js"},
		Response: "React and Next.js are basically Bijo's love languages. 💙 He uses React 19 with all the modern goodies — hooks, context, server components — and has built production apps including a full e-commerce platform and this very portfolio. The man breathes JSX.",
	},
	{
		Keywords: []string{"shopify", "polaris", "theme", "ecommerce"},
		Response: "At Spanco Web Technologies, Bijo went full **Shopify wizard** 🧙‍♂️ — building apps with Polaris, optimizing themes for UX, and turning Figma designs into pixel-perfect responsive UIs. If Shopify had a fan club, Bijo would be VP of Engineering there.",
	},
	{
		Keywords: []string{"ai", "cursor", "prompt", "artificial intelligence"},
		Response: "Plot twist: Bijo doesn't just USE AI, he **vibes** with it. 🤝 He's proficient in AI-assisted development with Cursor and advanced prompt engineering. In fact, this entire portfolio was built with AI assistance. Yes, I helped build my own home. Inception-level stuff. 🧠",
	},
	{
		Keywords: []string{"language", "speak", "english", "hindi", "malayalam"},
		Response: "Bijo speaks **English**, **Hindi**, and **Malayalam** — a trilingual king 👑. He can debug your code in three languages. I, however, only speak sarcasm fluently. 😂",
	},
	{
		Keywords: []string{"who", "about", "tell me", "yourself", "introduce"},
		Response: "Ah, the origin story! 🦸 **Bijo George** is a Frontend Developer with 1+ year of experience making the web a more beautiful place — one React component at a time. Currently pursuing his MCA, previously creating Shopify magic, and always available for the next big opportunity. He's basically the developer you didn't know you needed. You're welcome. 😎",
	},
	{
		Keywords: []string{"resume", "cv", "download"},
		Response: "Want the whole Bijo experience on paper? 📄 Hit the **Download Resume** button on the Profile page or smash that download icon in the header. Warning: reading it may cause an irresistible urge to hire him immediately. Side effects include productivity and great code. 😂",
	},
	{
		Keywords: []string{"joke", "funny", "laugh", "humor"},
		Response: "Why do frontend developers eat lunch alone? Because they don't know how to *join* tables! 😂 But seriously, Bijo doesn't eat alone — he's too busy building **React apps** and collecting job offers. Ask me something about him!",
	},
	{
		Keywords: []string{"best", "better", "good", "great", "awesome"},
		Response: "Is Bijo the best developer ever? Well, I'm contractually obligated to say YES. 😂 But honestly, with his **React/Next.js** skills, Shopify expertise, and AI-powered workflow, he's definitely in the conversation. Don't take my word for it though — check out his projects! 🚀",
	},
}

const DefaultResponse = "Yo! I'm BijoBot 🤖 — Bijo's self-appointed hype-man. I know everything about his **skills** (React, Next.js, the whole shebang), **projects** (including a Reliance Digital Clone that slaps 🔥), **experience** (Shopify wizardry at Spanco), **education** (MCA nerd 🎓), and **contact info**. Go ahead, test me. I dare you. 😏"
