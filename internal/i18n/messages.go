package i18n

// messages 按语言组织的文案目录
var messages = map[string]map[string]string{
	LocaleTH: {
		"error.invalid_request":     "คำขอไม่ถูกต้อง",
		"error.internal_error":      "ระบบขัดข้อง กรุณาลองใหม่ภายหลัง",
		"error.not_found":           "ไม่พบข้อมูลที่ร้องขอ",
		"error.rate_limited":        "คำขอถี่เกินไป กรุณาลองใหม่ภายหลัง",
		"error.auth_header_missing": "ไม่พบข้อมูลการยืนยันตัวตน",
		"error.token_invalid":       "การยืนยันตัวตนหมดอายุหรือไม่ถูกต้อง",
		"error.jwt_secret_missing":  "ระบบยืนยันตัวตนยังไม่พร้อมใช้งาน",
		"error.forbidden":           "ไม่มีสิทธิ์เข้าถึง",
		"error.unauthorized":        "กรุณาเข้าสู่ระบบ",

		"error.auth_header_invalid":       "รูปแบบข้อมูลการยืนยันตัวตนไม่ถูกต้อง",
		"error.affiliate_id_invalid":      "รหัสพาร์ทเนอร์ไม่ถูกต้อง",
		"error.affiliate_id_type_invalid": "รหัสพาร์ทเนอร์ไม่ถูกต้อง",
		"error.rate_limit_unavailable":    "ระบบไม่สามารถตรวจสอบคำขอได้ กรุณาลองใหม่",
		"error.register_too_many":         "ลงทะเบียนถี่เกินไป กรุณารอ %d วินาที",
		"error.login_too_many":            "เข้าสู่ระบบถี่เกินไป กรุณารอ %d วินาที",

		"error.code_invalid_format": "รหัสแนะนำต้องเป็นตัวอักษรอังกฤษหรือตัวเลข 3-10 ตัว",
		"error.code_taken":          "รหัสแนะนำนี้ถูกใช้แล้ว กรุณาเลือกรหัสอื่น",
		"error.code_exhausted":      "ไม่สามารถสร้างรหัสแนะนำอัตโนมัติได้ กรุณากำหนดเอง",

		"error.affiliate_exists":    "เบอร์โทรหรือบัญชีนี้ลงทะเบียนแล้ว",
		"error.affiliate_not_found": "ไม่พบข้อมูลพาร์ทเนอร์",
		"error.affiliate_disabled":  "บัญชีพาร์ทเนอร์ถูกระงับการใช้งาน",

		"error.ledger_unavailable": "ระบบส่วนกลางไม่ตอบสนอง ข้อมูลของท่านถูกบันทึกแล้ว",
		"error.ledger_submitted":   "ข้อมูลถูกส่งไปยังระบบส่วนกลางแล้ว",

		"error.line_verify_failed": "เข้าสู่ระบบผ่าน LINE ไม่สำเร็จ",
		"error.line_disabled":      "การเข้าสู่ระบบผ่าน LINE ยังไม่เปิดใช้งาน",

		"error.captcha_required":        "กรุณายืนยันรหัสภาพ",
		"error.captcha_invalid":         "รหัสภาพไม่ถูกต้องหรือหมดอายุ",
		"error.captcha_unavailable":     "ระบบรหัสภาพยังไม่เปิดใช้งาน",
		"error.captcha_generate_failed": "สร้างรหัสภาพไม่สำเร็จ",

		"error.upload_too_large":        "ไฟล์มีขนาดใหญ่เกินกำหนด",
		"error.upload_type_not_allowed": "ประเภทไฟล์ไม่รองรับ",
		"error.upload_failed":           "อัปโหลดไฟล์ไม่สำเร็จ",

		"validation.full_name_required": "กรุณาระบุชื่อ-นามสกุล",
		"validation.phone_invalid":      "เบอร์โทรศัพท์ไม่ถูกต้อง",
		"validation.email_invalid":      "อีเมลไม่ถูกต้อง",
		"validation.code_format":        "รหัสแนะนำต้องเป็นตัวอักษรอังกฤษหรือตัวเลข 3-10 ตัว",
		"validation.package_invalid":    "ประเภทแพ็กเกจไม่ถูกต้อง",
		"validation.bank_invalid":       "ข้อมูลบัญชีธนาคารไม่ถูกต้อง",
		"validation.consent_required":   "กรุณายอมรับเงื่อนไขการใช้งาน",

		"email.register_confirm.subject": "ยินดีต้อนรับสู่ AIYA Partner",
		"email.register_confirm.body":    "สวัสดีคุณ %s\n\nการลงทะเบียนพาร์ทเนอร์ของท่านเสร็จสมบูรณ์แล้ว\nรหัสแนะนำของท่านคือ %s\n\nขอบคุณที่ร่วมเป็นพาร์ทเนอร์กับเรา",
	},
	LocaleEN: {
		"error.invalid_request":     "Invalid request",
		"error.internal_error":      "Internal error, please try again later",
		"error.not_found":           "Resource not found",
		"error.rate_limited":        "Too many requests, please try again later",
		"error.auth_header_missing": "Authorization header missing",
		"error.token_invalid":       "Token invalid or expired",
		"error.jwt_secret_missing":  "Authentication is not configured",
		"error.forbidden":           "Access denied",
		"error.unauthorized":        "Please sign in",

		"error.auth_header_invalid":       "Authorization header format is invalid",
		"error.affiliate_id_invalid":      "Partner id is invalid",
		"error.affiliate_id_type_invalid": "Partner id is invalid",
		"error.rate_limit_unavailable":    "Unable to verify the request, please retry",
		"error.register_too_many":         "Too many registration attempts, please wait %d seconds",
		"error.login_too_many":            "Too many login attempts, please wait %d seconds",

		"error.code_invalid_format": "Referral code must be 3-10 letters or digits",
		"error.code_taken":          "This referral code is already taken",
		"error.code_exhausted":      "Could not generate a referral code, please choose one manually",

		"error.affiliate_exists":    "This phone number or account is already registered",
		"error.affiliate_not_found": "Partner not found",
		"error.affiliate_disabled":  "This partner account is disabled",

		"error.ledger_unavailable": "Central system is unavailable, your registration has been saved",
		"error.ledger_submitted":   "Registration was already submitted to the central system",

		"error.line_verify_failed": "LINE login failed",
		"error.line_disabled":      "LINE login is not enabled",

		"error.captcha_required":        "Captcha verification required",
		"error.captcha_invalid":         "Captcha is invalid or expired",
		"error.captcha_unavailable":     "Captcha is not enabled",
		"error.captcha_generate_failed": "Failed to generate captcha",

		"error.upload_too_large":        "File exceeds the size limit",
		"error.upload_type_not_allowed": "File type not allowed",
		"error.upload_failed":           "Upload failed",

		"validation.full_name_required": "Full name is required",
		"validation.phone_invalid":      "Phone number is invalid",
		"validation.email_invalid":      "Email address is invalid",
		"validation.code_format":        "Referral code must be 3-10 letters or digits",
		"validation.package_invalid":    "Package type is invalid",
		"validation.bank_invalid":       "Bank account details are invalid",
		"validation.consent_required":   "Consent is required",

		"email.register_confirm.subject": "Welcome to AIYA Partner",
		"email.register_confirm.body":    "Hello %s,\n\nYour partner registration is complete.\nYour referral code is %s.\n\nThank you for joining us.",
	},
}
