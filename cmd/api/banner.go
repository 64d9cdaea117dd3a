package main

const sodaBanner = `
 ____        ____    _
/ ___|  ___ |  _ \  / \
\___ \ / _ \| | | |/ _ \
 ___) | (_) | |_| / ___ \
|____/ \___/|____/_/   \_\  consent portal

`
