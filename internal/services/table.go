package services

// wellKnown holds tcp service names as they appear in the IANA registry and
// most /etc/services files.
var wellKnown = map[int]string{
	1:     "tcpmux",
	7:     "echo",
	9:     "discard",
	11:    "systat",
	13:    "daytime",
	15:    "netstat",
	17:    "qotd",
	19:    "chargen",
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	37:    "time",
	43:    "whois",
	49:    "tacacs",
	53:    "domain",
	70:    "gopher",
	79:    "finger",
	80:    "http",
	88:    "kerberos",
	102:   "iso-tsap",
	104:   "acr-nema",
	110:   "pop3",
	111:   "sunrpc",
	113:   "auth",
	119:   "nntp",
	123:   "ntp",
	135:   "epmap",
	137:   "netbios-ns",
	138:   "netbios-dgm",
	139:   "netbios-ssn",
	143:   "imap",
	161:   "snmp",
	162:   "snmp-trap",
	163:   "cmip-man",
	164:   "cmip-agent",
	174:   "mailq",
	177:   "xdmcp",
	179:   "bgp",
	194:   "irc",
	199:   "smux",
	209:   "qmtp",
	210:   "z3950",
	213:   "ipx",
	345:   "pawserv",
	346:   "zserv",
	347:   "fatserv",
	369:   "rpc2portmap",
	370:   "codaauth2",
	371:   "clearcase",
	389:   "ldap",
	427:   "svrloc",
	443:   "https",
	444:   "snpp",
	445:   "microsoft-ds",
	464:   "kpasswd",
	465:   "submissions",
	487:   "saft",
	512:   "exec",
	513:   "login",
	514:   "shell",
	515:   "printer",
	538:   "gdomap",
	540:   "uucp",
	543:   "klogin",
	544:   "kshell",
	548:   "afpovertcp",
	554:   "rtsp",
	563:   "nntps",
	587:   "submission",
	607:   "nqs",
	610:   "npmp-local",
	611:   "npmp-gui",
	612:   "hmmp-ind",
	628:   "qmqp",
	631:   "ipp",
	636:   "ldaps",
	646:   "ldp",
	655:   "tinc",
	706:   "silc",
	749:   "kerberos-adm",
	853:   "domain-s",
	873:   "rsync",
	989:   "ftps-data",
	990:   "ftps",
	992:   "telnets",
	993:   "imaps",
	995:   "pop3s",
	1080:  "socks",
	1093:  "proofd",
	1099:  "rmiregistry",
	1194:  "openvpn",
	1352:  "lotusnote",
	1433:  "ms-sql-s",
	1434:  "ms-sql-m",
	1524:  "ingreslock",
	1645:  "datametrics",
	1646:  "sa-msg-port",
	1649:  "kermit",
	1677:  "groupwise",
	1701:  "l2f",
	1812:  "radius",
	1813:  "radius-acct",
	1863:  "msnp",
	1883:  "mqtt",
	1957:  "unix-status",
	1958:  "log-server",
	1959:  "remoteping",
	2000:  "cisco-sccp",
	2010:  "search",
	2049:  "nfs",
	2086:  "gnunet",
	2101:  "rtcm-sc104",
	2119:  "gsigatekeeper",
	2135:  "gris",
	2401:  "cvspserver",
	2430:  "venus",
	2431:  "venus-se",
	2432:  "codasrv",
	2433:  "codasrv-se",
	2583:  "mon",
	2628:  "dict",
	2792:  "f5-globalsite",
	2811:  "gsiftp",
	2947:  "gpsd",
	3050:  "gds-db",
	3205:  "isns",
	3260:  "iscsi-target",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	3493:  "nut",
	3632:  "distcc",
	3689:  "daap",
	3690:  "svn",
	4031:  "suucp",
	4094:  "sysrqd",
	4190:  "sieve",
	4369:  "epmd",
	4373:  "remctl",
	4353:  "f5-iquery",
	4460:  "ntske",
	4569:  "iax",
	4691:  "mtn",
	4899:  "radmin-port",
	5000:  "commplex-main",
	5001:  "commplex-link",
	5060:  "sip",
	5061:  "sip-tls",
	5222:  "xmpp-client",
	5269:  "xmpp-server",
	5308:  "cfengine",
	5353:  "mdns",
	5432:  "postgresql",
	5556:  "freeciv",
	5666:  "nrpe",
	5667:  "nsca",
	5672:  "amqp",
	5900:  "rfb",
	5984:  "couchdb",
	6000:  "x11",
	6379:  "redis",
	6443:  "sun-sr-https",
	6514:  "syslog-tls",
	6566:  "sane-port",
	6667:  "ircd",
	6697:  "ircs-u",
	8080:  "http-alt",
	8081:  "sunproxyadmin",
	8088:  "omniorb",
	8443:  "pcsync-https",
	8883:  "secure-mqtt",
	9000:  "cslistener",
	9092:  "XmlIpcRegSvc",
	9100:  "pdl-datastream",
	9101:  "bacula-dir",
	9102:  "bacula-fd",
	9103:  "bacula-sd",
	9200:  "wap-wsp",
	9418:  "git",
	9667:  "xmms2",
	10000: "webmin",
	10050: "zabbix-agent",
	10051: "zabbix-trapper",
	11211: "memcache",
	11371: "hkp",
	13720: "bprd",
	13721: "bpdbm",
	13724: "vnetd",
	13782: "bpcd",
	13783: "vopied",
	17500: "db-lsp",
	22125: "dcap",
	22128: "gsidcap",
	22273: "wnn6",
	27017: "mongodb",
	60179: "fido",
}
