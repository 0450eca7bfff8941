package profile

import "github.com/nikogura/portfolio/pkg/i18n"

const (
	en = i18n.English
	zh = i18n.TraditionalChinese
)

// Default returns the site's profile.  Every call builds a fresh value.
//
//nolint:funlen,maintidx // Content, not logic
func Default() (p Profile) {
	p = Profile{
		Name:   "Tygrus Tsai",
		Avatar: "/avatar.jpg",
		Title: Text{
			en: "Security Researcher & Full-Stack Developer",
			zh: "資安研究員 & 全端開發者",
		},
		Bio: Text{
			en: "Passionate security researcher and developer with 5+ years of experience in penetration testing, " +
				"secure application development, and DevSecOps. I love exploring vulnerabilities, building secure " +
				"systems, and sharing knowledge with the community through talks and technical articles.",
			zh: "熱衷於資安研究與開發，擁有超過 5 年的滲透測試、安全應用程式開發及 DevSecOps 經驗。" +
				"喜歡探索漏洞、建構安全系統，並透過演講和技術文章與社群分享知識。",
		},
		Location: "Taipei, Taiwan",

		Social: Social{
			"github":   "https://github.com/tygrus",
			"linkedin": "https://linkedin.com/in/tygrus",
			"twitter":  "https://twitter.com/tygrus",
			"youtube":  "https://youtube.com/@tygrus",
			"email":    "tygrus@example.com",
		},

		Experience: []WorkExperience{
			{
				Company:   "SecureTech Inc.",
				Position:  Text{en: "Senior Security Engineer", zh: "資深資安工程師"},
				Location:  "Taipei, Taiwan",
				StartDate: "2022-03",
				Description: TextList{
					en: {
						"Lead penetration testing engagements for Fortune 500 clients",
						"Developed automated security scanning tools reducing assessment time by 40%",
						"Mentored junior team members and conducted internal security training",
						"Contributed to the company's bug bounty program, finding 15+ critical vulnerabilities",
					},
					zh: {
						"主導財星 500 大企業客戶的滲透測試專案",
						"開發自動化安全掃描工具，將評估時間縮短 40%",
						"指導初階團隊成員並進行內部資安培訓",
						"參與公司漏洞獎勵計畫，發現 15+ 個重大漏洞",
					},
				},
				Technologies: []string{"Python", "Burp Suite", "Kubernetes", "AWS", "Terraform"},
			},
			{
				Company:   "TechStartup Co.",
				Position:  Text{en: "Full-Stack Developer", zh: "全端開發工程師"},
				Location:  "Taipei, Taiwan",
				StartDate: "2019-06",
				EndDate:   "2022-02",
				Description: TextList{
					en: {
						"Built and maintained microservices architecture handling 1M+ daily requests",
						"Implemented CI/CD pipelines with integrated security scanning",
						"Developed real-time monitoring and alerting systems",
						"Collaborated with security team to implement secure coding practices",
					},
					zh: {
						"建構並維護處理每日 100 萬以上請求的微服務架構",
						"實作整合安全掃描的 CI/CD 流程",
						"開發即時監控與告警系統",
						"與資安團隊合作實施安全編碼實踐",
					},
				},
				Technologies: []string{"TypeScript", "Node.js", "React", "PostgreSQL", "Docker", "GitHub Actions"},
			},
			{
				Company:   "CyberDefense Corp.",
				Position:  Text{en: "Junior Security Analyst", zh: "初階資安分析師"},
				Location:  "Taipei, Taiwan",
				StartDate: "2017-09",
				EndDate:   "2019-05",
				Description: TextList{
					en: {
						"Performed vulnerability assessments and security audits",
						"Monitored SIEM systems and responded to security incidents",
						"Created security documentation and compliance reports",
						"Assisted in developing internal security policies",
					},
					zh: {
						"執行弱點評估與安全稽核",
						"監控 SIEM 系統並回應資安事件",
						"撰寫安全文件與合規報告",
						"協助制定內部安全政策",
					},
				},
				Technologies: []string{"Splunk", "Nessus", "Wireshark", "Linux"},
			},
		},

		Certifications: []Certification{
			{
				Name:          "OSCP (Offensive Security Certified Professional)",
				Issuer:        "Offensive Security",
				IssueDate:     "2021-06",
				CredentialID:  "OS-XXXXX",
				CredentialURL: "https://www.credential.net/xxxxx",
			},
			{
				Name:         "AWS Certified Security - Specialty",
				Issuer:       "Amazon Web Services",
				IssueDate:    "2022-03",
				ExpiryDate:   "2025-03",
				CredentialID: "AWS-SEC-XXXXX",
			},
			{
				Name:         "CEH (Certified Ethical Hacker)",
				Issuer:       "EC-Council",
				IssueDate:    "2020-01",
				ExpiryDate:   "2023-01",
				CredentialID: "ECC-CEH-XXXXX",
			},
			{
				Name:         "CompTIA Security+",
				Issuer:       "CompTIA",
				IssueDate:    "2019-03",
				ExpiryDate:   "2025-03",
				CredentialID: "COMP-SEC-XXXXX",
			},
			{
				Name:         "CKA (Certified Kubernetes Administrator)",
				Issuer:       "Cloud Native Computing Foundation",
				IssueDate:    "2023-01",
				ExpiryDate:   "2026-01",
				CredentialID: "CKA-XXXXX",
			},
		},

		Speaking: []Speaking{
			{
				Title:    Text{en: "Breaking and Securing Modern Web Applications", zh: "現代 Web 應用程式的攻擊與防禦"},
				Event:    "HITCON 2023",
				Date:     "2023-08-18",
				Location: "Taipei, Taiwan",
				Description: Text{
					en: "Deep dive into common web vulnerabilities and practical defense strategies",
					zh: "深入探討常見的 Web 漏洞及實用的防禦策略",
				},
				SlidesURL: "https://slides.example.com/hitcon2023",
				VideoURL:  "https://youtube.com/watch?v=example",
			},
			{
				Title:    Text{en: "DevSecOps: Integrating Security into CI/CD", zh: "DevSecOps：將安全整合至 CI/CD 流程"},
				Event:    "COSCUP 2023",
				Date:     "2023-07-29",
				Location: "Taipei, Taiwan",
				Description: Text{
					en: "Practical guide to implementing security automation in development pipelines",
					zh: "在開發流程中實施安全自動化的實用指南",
				},
				SlidesURL: "https://slides.example.com/coscup2023",
			},
			{
				Title:    Text{en: "Container Security Best Practices", zh: "容器安全最佳實踐"},
				Event:    "Cloud Native Taiwan User Group Meetup",
				Date:     "2022-11-15",
				Location: "Online",
				Description: Text{
					en: "Security considerations for containerized applications and Kubernetes environments",
					zh: "容器化應用程式與 Kubernetes 環境的安全考量",
				},
			},
		},

		Education: []Education{
			{
				School:    "National Taiwan University",
				Degree:    Text{en: "Master of Science", zh: "碩士"},
				Field:     Text{en: "Computer Science - Information Security", zh: "資訊工程學系 - 資訊安全組"},
				StartDate: "2015-09",
				EndDate:   "2017-06",
				Achievements: TextList{
					en: {
						`Thesis: "Machine Learning Approaches to Network Intrusion Detection"`,
						"Graduate Research Assistant at Security Lab",
					},
					zh: {
						"論文：「機器學習在網路入侵偵測之應用」",
						"安全實驗室研究助理",
					},
				},
			},
			{
				School:    "National Cheng Kung University",
				Degree:    Text{en: "Bachelor of Science", zh: "學士"},
				Field:     Text{en: "Computer Science and Information Engineering", zh: "資訊工程學系"},
				StartDate: "2011-09",
				EndDate:   "2015-06",
				Achievements: TextList{
					en: {
						"Dean's List (Top 10%)",
						"CTF Team Member - Ranked Top 5 in Taiwan",
					},
					zh: {
						"書卷獎（前 10%）",
						"CTF 校隊成員 - 全台排名前 5",
					},
				},
			},
		},

		Skills: []SkillCategory{
			{
				Name: Text{en: "Security", zh: "資訊安全"},
				Skills: []string{
					"Penetration Testing",
					"Vulnerability Assessment",
					"Web Application Security",
					"Network Security",
					"Incident Response",
					"Threat Modeling",
					"SIEM/SOC",
					"Forensics",
				},
			},
			{
				Name:   Text{en: "Programming", zh: "程式語言"},
				Skills: []string{"Python", "TypeScript/JavaScript", "Go", "Rust", "Bash", "SQL"},
			},
			{
				Name: Text{en: "Development", zh: "軟體開發"},
				Skills: []string{
					"React",
					"Node.js",
					"Next.js",
					"FastAPI",
					"PostgreSQL",
					"Redis",
					"GraphQL",
					"REST APIs",
				},
			},
			{
				Name: Text{en: "DevOps & Cloud", zh: "DevOps & 雲端"},
				Skills: []string{
					"Docker",
					"Kubernetes",
					"AWS",
					"GCP",
					"Terraform",
					"GitHub Actions",
					"GitLab CI",
					"Prometheus/Grafana",
				},
			},
			{
				Name: Text{en: "Security Tools", zh: "資安工具"},
				Skills: []string{
					"Burp Suite",
					"Nmap",
					"Metasploit",
					"Wireshark",
					"OWASP ZAP",
					"Nessus",
					"Nuclei",
					"ffuf",
				},
			},
		},
	}

	return p
}
